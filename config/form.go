package config

// FormConfig lists the categorical choices offered by the interactive form.
// They are suggestions only; any text is sent as typed.
type FormConfig struct {
	AreaTypes    []string `json:"area_types"`
	Availability []string `json:"availability"`
	NearbyMetro  []string `json:"nearby_metro"`
	AgeSegments  []string `json:"age_segments"`
}

// SetDefaults uses the categories the hosted model was trained on.
func (c *FormConfig) SetDefaults() {
	if len(c.AreaTypes) == 0 {
		c.AreaTypes = []string{"Super built-up  Area", "Built-up  Area", "Plot  Area", "Carpet  Area"}
	}
	if len(c.Availability) == 0 {
		c.Availability = []string{"Ready To Move", "Under Construction"}
	}
	if len(c.NearbyMetro) == 0 {
		c.NearbyMetro = []string{"Yes", "No"}
	}
	if len(c.AgeSegments) == 0 {
		c.AgeSegments = []string{"auto", "New", "Mid", "Old"}
	}
}
