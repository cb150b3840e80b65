package models

type Label struct {
	ID   int64
	Name string
}

// LabelNames returns the names in the order given.
func LabelNames(labels []Label) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return names
}
