package data

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/avessi/godforge/internal/model"
)

// LoadCharacters читает кэш персонажей из JSON-файла и строит каталог.
func LoadCharacters(path string) (*model.CharacterCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading character cache %s: %w", path, err)
	}

	var records []characterRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing character cache %s: %w", path, err)
	}

	chars := make([]*model.Character, 0, len(records))
	for _, rec := range records {
		ch, err := rec.toModel()
		if err != nil {
			return nil, err
		}
		chars = append(chars, ch)
	}

	catalog := model.NewCharacterCatalog(chars)
	slog.Info("character catalog loaded", "path", path, "characters", catalog.Len())
	return catalog, nil
}

// LoadItems читает кэш предметов и строит каталог с предвычисленными
// корнями цепочек улучшений.
func LoadItems(path string) (*model.ItemCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading item cache %s: %w", path, err)
	}

	var records []itemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parsing item cache %s: %w", path, err)
	}

	items := make([]*model.Item, 0, len(records))
	for _, rec := range records {
		it, err := rec.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	catalog, err := model.NewItemCatalog(items)
	if err != nil {
		return nil, fmt.Errorf("building item catalog from %s: %w", path, err)
	}
	slog.Info("item catalog loaded", "path", path, "items", catalog.Len())
	return catalog, nil
}
