package data

type Breed struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Origin          string   `yaml:"origin"`
	Category        string   `yaml:"category"`
	About           string   `yaml:"about"`
	Characteristics []string `yaml:"characteristics"`
	Uses            []string `yaml:"uses"`
}
