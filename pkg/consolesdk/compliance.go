package consolesdk

import (
	"context"
	"net/http"
)

const (
	projectsPath    = "/compliance/projects"
	tasksPath       = "/compliance/tasks"
	compliancesPath = "/compliance/compliances"
	gstReturnsPath  = "/compliance/gst-returns"
	tdsReturnsPath  = "/compliance/tds-returns"
	timeEntriesPath = "/compliance/time-entries"
)

// ComplianceAPI covers engagements, tasks and statutory filings.
type ComplianceAPI struct {
	r Requester
}

// ============================================================================
// Projects
// ============================================================================

func (c *ComplianceAPI) ListProjects(ctx context.Context, params Params) ([]Project, error) {
	return call[[]Project](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   projectsPath,
		Query:  params,
	})
}

func (c *ComplianceAPI) GetProject(ctx context.Context, id int64) (*Project, error) {
	p, err := call[Project](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(projectsPath, id),
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject forwards project to the server as is.
func (c *ComplianceAPI) CreateProject(ctx context.Context, project Record) (*Project, error) {
	p, err := call[Project](ctx, c.r, &Request{
		Method: http.MethodPost,
		Path:   projectsPath,
		Body:   project,
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ============================================================================
// Tasks
// ============================================================================

func (c *ComplianceAPI) ListTasks(ctx context.Context, params Params) ([]Task, error) {
	return call[[]Task](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   tasksPath,
		Query:  params,
	})
}

func (c *ComplianceAPI) GetTask(ctx context.Context, id int64) (*Task, error) {
	t, err := call[Task](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(tasksPath, id),
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *ComplianceAPI) CreateTask(ctx context.Context, in TaskInput) (*Task, error) {
	t, err := call[Task](ctx, c.r, &Request{
		Method: http.MethodPost,
		Path:   tasksPath,
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *ComplianceAPI) UpdateTask(ctx context.Context, id int64, in TaskInput) (*Task, error) {
	t, err := call[Task](ctx, c.r, &Request{
		Method: http.MethodPut,
		Path:   resourcePath(tasksPath, id),
		Body:   in,
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ============================================================================
// Filings
// ============================================================================

func (c *ComplianceAPI) ListCompliances(ctx context.Context, params Params) ([]ComplianceItem, error) {
	return call[[]ComplianceItem](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   compliancesPath,
		Query:  params,
	})
}

func (c *ComplianceAPI) GetCompliance(ctx context.Context, id int64) (*ComplianceItem, error) {
	item, err := call[ComplianceItem](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   resourcePath(compliancesPath, id),
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateCompliance forwards item to the server as is.
func (c *ComplianceAPI) CreateCompliance(ctx context.Context, item Record) (*ComplianceItem, error) {
	out, err := call[ComplianceItem](ctx, c.r, &Request{
		Method: http.MethodPost,
		Path:   compliancesPath,
		Body:   item,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ComplianceAPI) ListGSTReturns(ctx context.Context, params Params) ([]Record, error) {
	return c.records(ctx, gstReturnsPath, params)
}

func (c *ComplianceAPI) ListTDSReturns(ctx context.Context, params Params) ([]Record, error) {
	return c.records(ctx, tdsReturnsPath, params)
}

// ============================================================================
// Time tracking
// ============================================================================

func (c *ComplianceAPI) ListTimeEntries(ctx context.Context, params Params) ([]Record, error) {
	return c.records(ctx, timeEntriesPath, params)
}

func (c *ComplianceAPI) CreateTimeEntry(ctx context.Context, entry Record) (Record, error) {
	return call[Record](ctx, c.r, &Request{
		Method: http.MethodPost,
		Path:   timeEntriesPath,
		Body:   entry,
	})
}

func (c *ComplianceAPI) records(ctx context.Context, path string, params Params) ([]Record, error) {
	return call[[]Record](ctx, c.r, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  params,
	})
}
