package data

// ImageFile is an image payload supplied by the caller for classification.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type PredictionAlternative struct {
	Label      string
	Confidence int
}

// PredictionResult is a normalized classification; confidences are integer percentages.
type PredictionResult struct {
	Label        string
	Confidence   int
	Alternatives []PredictionAlternative
}

type ServiceStatus struct {
	Status      string
	ModelLoaded bool
}
