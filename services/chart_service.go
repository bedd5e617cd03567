package services

import (
	"fmt"
	"log/slog"
	"strings"

	"orgchart/models"
	"orgchart/org"
	"orgchart/validator"
)

// DefaultMaxEntries caps the entries a chart may list when no limit is configured
const DefaultMaxEntries = 10000

// ChartService handles business logic for org charts
type ChartService struct {
	store      ChartStore
	validate   *validator.Validator
	maxEntries int
	logger     *slog.Logger
}

// NewChartService creates a new chart service. maxEntries bounds the number
// of entries (an employee attached twice is two entries) any chart may list;
// zero or less selects DefaultMaxEntries.
func NewChartService(store ChartStore, maxEntries int, logger *slog.Logger) *ChartService {
	if logger == nil {
		logger = slog.Default()
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &ChartService{
		store:      store,
		validate:   validator.New(),
		maxEntries: maxEntries,
		logger:     logger,
	}
}

// CreateChart creates a chart whose first employee is root
func (cs *ChartService) CreateChart(name string, root models.EmployeeInput) (*models.Chart, error) {
	chart := NewChart(strings.TrimSpace(name))
	chart.add(newEmployee(root))
	view := chartView(chart)

	if err := cs.store.Put(chart); err != nil {
		return nil, fmt.Errorf("failed to store chart: %w", err)
	}

	cs.logger.Info("chart created", "chart_id", chart.ID, "name", chart.Name)
	return view, nil
}

// ListCharts returns every chart, oldest first
func (cs *ChartService) ListCharts() []models.Chart {
	charts := cs.store.List()
	out := make([]models.Chart, 0, len(charts))
	for _, chart := range charts {
		chart.mu.RLock()
		out = append(out, *chartView(chart))
		chart.mu.RUnlock()
	}
	return out
}

// GetChart retrieves one chart summary
func (cs *ChartService) GetChart(chartID string) (*models.Chart, error) {
	chart, err := cs.store.Get(chartID)
	if err != nil {
		return nil, err
	}

	chart.mu.RLock()
	defer chart.mu.RUnlock()
	return chartView(chart), nil
}

// DeleteChart drops a chart and every employee in it
func (cs *ChartService) DeleteChart(chartID string) error {
	if err := cs.store.Delete(chartID); err != nil {
		return err
	}
	cs.logger.Info("chart deleted", "chart_id", chartID)
	return nil
}

// Hire creates an employee in a chart. A non-empty managerID attaches the
// new employee under that manager; otherwise it becomes another root.
func (cs *ChartService) Hire(chartID string, in models.EmployeeInput, managerID string) (*models.Employee, error) {
	chart, err := cs.store.Get(chartID)
	if err != nil {
		return nil, err
	}

	chart.mu.Lock()
	defer chart.mu.Unlock()

	var manager *org.Employee
	if managerID != "" {
		var ok bool
		if manager, ok = chart.lookup(managerID); !ok {
			return nil, ErrManagerNotFound
		}
	}

	e := newEmployee(in)
	id, err := chart.hire(e, manager, cs.maxEntries)
	if err != nil {
		return nil, err
	}

	cs.logger.Debug("employee hired", "chart_id", chartID, "employee_id", id, "manager_id", managerID)

	view := employeeView(chart, e)
	view.TotalEmployees = e.TotalEmployees()
	return &view, nil
}

// Attach adds an existing employee under a manager and returns the updated
// manager. Attaching the same pair again adds a second entry.
func (cs *ChartService) Attach(chartID, managerID, subordinateID string) (*models.Employee, error) {
	chart, err := cs.store.Get(chartID)
	if err != nil {
		return nil, err
	}

	chart.mu.Lock()
	defer chart.mu.Unlock()

	manager, ok := chart.lookup(managerID)
	if !ok {
		return nil, ErrManagerNotFound
	}
	sub, ok := chart.lookup(subordinateID)
	if !ok {
		return nil, ErrEmployeeNotFound
	}

	if err := chart.attach(manager, sub, cs.maxEntries); err != nil {
		return nil, err
	}

	cs.logger.Debug("employee attached", "chart_id", chartID, "manager_id", managerID, "subordinate_id", subordinateID)

	view := employeeView(chart, manager)
	view.TotalEmployees = manager.TotalEmployees()
	return &view, nil
}

// Employee returns one employee with its structural counters
func (cs *ChartService) Employee(chartID, employeeID string) (*models.Employee, error) {
	var view models.Employee
	err := cs.read(chartID, employeeID, func(chart *Chart, e *org.Employee) {
		view = employeeView(chart, e)
		view.TotalEmployees = e.TotalEmployees()
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Subordinates returns the direct reports, one entry per attachment
func (cs *ChartService) Subordinates(chartID, employeeID string) ([]models.Employee, error) {
	var out []models.Employee
	err := cs.read(chartID, employeeID, func(chart *Chart, e *org.Employee) {
		out = employeeViews(chart, e.Subordinates())
	})
	return out, err
}

// EarningOver lists the subtree members paid strictly more than amount, in pre-order
func (cs *ChartService) EarningOver(chartID, employeeID string, amount float64) ([]models.Employee, error) {
	var out []models.Employee
	err := cs.read(chartID, employeeID, func(chart *Chart, e *org.Employee) {
		out = employeeViews(chart, e.EmployeesEarningOver(amount))
	})
	return out, err
}

// SameBoss reports whether two employees of a chart share a direct manager
func (cs *ChartService) SameBoss(chartID, employeeID, otherID string) (bool, error) {
	chart, err := cs.store.Get(chartID)
	if err != nil {
		return false, err
	}

	chart.mu.RLock()
	defer chart.mu.RUnlock()

	a, ok := chart.lookup(employeeID)
	if !ok {
		return false, ErrEmployeeNotFound
	}
	b, ok := chart.lookup(otherID)
	if !ok {
		return false, ErrEmployeeNotFound
	}
	return a.HasSameBoss(b), nil
}

// RenderChart draws every root of a chart as a text tree
func (cs *ChartService) RenderChart(chartID string) (string, error) {
	chart, err := cs.store.Get(chartID)
	if err != nil {
		return "", err
	}

	chart.mu.RLock()
	defer chart.mu.RUnlock()

	var sb strings.Builder
	for _, root := range chart.roots() {
		out, err := RenderTree(root)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// RenderEmployee draws the subtree rooted at one employee
func (cs *ChartService) RenderEmployee(chartID, employeeID string) (string, error) {
	var (
		out       string
		renderErr error
	)
	err := cs.read(chartID, employeeID, func(_ *Chart, e *org.Employee) {
		out, renderErr = RenderTree(e)
	})
	if err != nil {
		return "", err
	}
	return out, renderErr
}

// read resolves an employee and runs fn under the chart's read lock
func (cs *ChartService) read(chartID, employeeID string, fn func(*Chart, *org.Employee)) error {
	chart, err := cs.store.Get(chartID)
	if err != nil {
		return err
	}

	chart.mu.RLock()
	defer chart.mu.RUnlock()

	e, ok := chart.lookup(employeeID)
	if !ok {
		return ErrEmployeeNotFound
	}

	fn(chart, e)
	return nil
}

func newEmployee(in models.EmployeeInput) *org.Employee {
	return org.NewEmployee(strings.TrimSpace(in.Name), strings.TrimSpace(in.Title), in.Salary)
}

func chartView(chart *Chart) *models.Chart {
	view := &models.Chart{
		ID:        chart.ID,
		Name:      chart.Name,
		Roots:     make([]string, 0),
		Headcount: len(chart.employees),
		CreatedAt: chart.CreatedAt,
	}
	for _, root := range chart.roots() {
		view.Roots = append(view.Roots, chart.idOf(root))
		view.TotalEmployees += root.TotalEmployees()
	}
	return view
}

func employeeView(chart *Chart, e *org.Employee) models.Employee {
	view := models.Employee{
		ID:                   chart.idOf(e),
		ChartID:              chart.ID,
		Name:                 e.Name(),
		Title:                e.Title(),
		Salary:               e.Salary(),
		NumberOfSubordinates: e.NumberOfSubordinates(),
		PeopleToRoot:         e.NumberOfPeopleToRoot(),
	}
	if name, ok := e.BossName(); ok {
		bossID := chart.idOf(e.Boss())
		view.Boss = &name
		view.BossID = &bossID
	}
	return view
}

func employeeViews(chart *Chart, employees []*org.Employee) []models.Employee {
	out := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		out = append(out, employeeView(chart, e))
	}
	return out
}
