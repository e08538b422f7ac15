package integration

// Compact catalog fixtures shared by the pipeline tests: three
// characters (one per opposing role) and a pool with a starter chain, a
// glyph chain and eight filler chains.

const characterCache = `[
  {
    "id": 1,
    "name": "Swift Arrow",
    "role": "hunter",
    "type": "physical",
    "uses_mana": true,
    "stats": {
      "attack speed": {"base": 1.0, "per_level": 0.012},
      "health": {"base": 400, "per_level": 70},
      "physical power": {"base": 38, "per_level": 2}
    },
    "basic_attack": {"base": 35, "per_level": 2, "scaling": 0.4}
  },
  {
    "id": 2,
    "name": "Stone Bulwark",
    "role": "guardian",
    "type": "magical",
    "uses_mana": true,
    "stats": {
      "health": {"base": 500, "per_level": 90},
      "physical protection": {"base": 40, "per_level": 2}
    },
    "basic_attack": {"base": 30, "per_level": 1.5, "scaling": 0.2}
  },
  {
    "id": 3,
    "name": "Ember Sage",
    "role": "mage",
    "type": "magical",
    "uses_mana": true,
    "stats": {
      "health": {"base": 380, "per_level": 65},
      "physical protection": {"base": 25, "per_level": 1.5}
    },
    "basic_attack": {"base": 32, "per_level": 1.5, "scaling": 0.2}
  }
]`

const itemCache = `[
  {"id": 1, "name": "Fledgling Bow", "tier": 1, "price": 650, "kind": "equipment",
   "starter": true,
   "properties": [{"stat": "physical power", "flat": 10}]},
  {"id": 2, "name": "Seasoned Bow", "tier": 2, "parent_id": 1, "price": 850, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 20}]},

  {"id": 10, "name": "Steel Edge", "tier": 3, "price": 1200, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 30}]},
  {"id": 11, "name": "Runed Steel Edge", "tier": 4, "parent_id": 10, "price": 600, "kind": "equipment",
   "glyph": true,
   "properties": [{"stat": "physical power", "flat": 45}],
   "effects": [{"trigger": "on_hit", "kind": "shred_stack", "value": 0.05, "duration": 5, "max_stacks": 3}]},

  {"id": 20, "name": "Heavy Ballista", "tier": 3, "price": 2400, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 40}]},
  {"id": 21, "name": "War Pike", "tier": 3, "price": 2300, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 38}]},
  {"id": 22, "name": "Twin Daggers", "tier": 3, "price": 2200, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 36}]},
  {"id": 23, "name": "Falcon Talon", "tier": 3, "price": 2100, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 34}]},
  {"id": 24, "name": "Serrated Blade", "tier": 3, "price": 2000, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 32}]},
  {"id": 25, "name": "Iron Maul", "tier": 3, "price": 1900, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 31}]},
  {"id": 26, "name": "Hooked Spear", "tier": 3, "price": 1800, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 29}]},
  {"id": 27, "name": "Bladed Buckler", "tier": 3, "price": 1700, "kind": "equipment",
   "properties": [{"stat": "physical power", "flat": 28}]}
]`
