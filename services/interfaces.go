package services

// ChartStore defines the interface for chart storage
type ChartStore interface {
	Get(id string) (*Chart, error)
	List() []*Chart
	Put(chart *Chart) error
	Delete(id string) error
}
