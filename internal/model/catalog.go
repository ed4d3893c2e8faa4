package model

// Catalog holds the user's saved material presets.
type Catalog struct {
	Materials []Material `json:"materials"`
}

// DefaultCatalog returns a catalog populated with common materials using
// standard trade dimensions.
func DefaultCatalog() Catalog {
	return Catalog{
		Materials: []Material{
			NewWallpaper("Vinyl Wallpaper 0.53m", 1200, StandardRollWidth, StandardRollLength),
			NewWallpaper("Non-Woven Wallpaper 1.06m", 2400, 1.06, StandardRollLength),
			NewTile("Ceramic Tile 30x30", 850, 8, StandardTileWidth, StandardTileHeight),
			NewTile("Porcelain Tile 60x60", 1600, 4, 0.6, 0.6),
			NewLaminate("Laminate Oak 8mm", 1450, 8, StandardPlankWidth, StandardPlankLength),
			NewLaminate("Laminate Walnut 12mm", 2100, 6, StandardPlankWidth, StandardPlankLength),
		},
	}
}

// Add appends a material to the catalog.
func (c *Catalog) Add(m Material) {
	c.Materials = append(c.Materials, m)
}

// Remove removes a material by ID. Returns true if found and removed.
func (c *Catalog) Remove(id string) bool {
	for i, m := range c.Materials {
		if m.ID == id {
			c.Materials = append(c.Materials[:i], c.Materials[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the material with the given ID, or nil.
func (c *Catalog) FindByID(id string) *Material {
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first material with the given name, or nil.
func (c *Catalog) FindByName(name string) *Material {
	for i := range c.Materials {
		if c.Materials[i].Name == name {
			return &c.Materials[i]
		}
	}
	return nil
}

// Names returns the material names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Materials))
	for i, m := range c.Materials {
		names[i] = m.Name
	}
	return names
}
