package model

// Project ties rooms, materials, and accumulated results together for save/load.
type Project struct {
	Name      string              `json:"name"`
	Rooms     []Room              `json:"rooms"`
	Materials []Material          `json:"materials"`
	Results   []CalculationResult `json:"results,omitempty"`
}

// NewProject creates an empty named project.
func NewProject(name string) Project {
	if name == "" {
		name = "Untitled"
	}
	return Project{
		Name:      name,
		Rooms:     []Room{},
		Materials: []Material{},
	}
}
