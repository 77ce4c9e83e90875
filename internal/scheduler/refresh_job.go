package scheduler

// RefreshJob periodically triggers Engine.Refresh.
type RefreshJob struct {
	refresh func(forceTrain bool) error
}

// NewRefreshJob wraps a refresh function (typically Engine.Refresh, with its
// status return discarded) as a schedulable Job.
func NewRefreshJob(refresh func(forceTrain bool) error) *RefreshJob {
	return &RefreshJob{refresh: refresh}
}

func (j *RefreshJob) Run() error {
	return j.refresh(false)
}

func (j *RefreshJob) Name() string {
	return "refresh"
}
