// internal/registration/pipeline.go
package registration

import (
	"context"
	"sync"
	"time"

	"club-portal/internal/common/logger"
	"club-portal/internal/common/metrics"
	"club-portal/internal/models"
	"club-portal/internal/notify"
	"club-portal/internal/storage"
)

// Status is the submission state of one form session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

const (
	msgSubmitFailed = "Registration failed. Please try again."

	// successResetDelay is how long the hosting UI stays on the success view
	// before the pipeline instructs it to close. The only automatic
	// transition in the machine.
	successResetDelay = 3 * time.Second
)

const metricForm = "event_registration"

// Pipeline orchestrates one registration attempt: validation gate, storage
// write, best-effort notification, and the Idle/Submitting/Success/Error
// state transitions. At most one storage write is issued per Idle→Submitting
// transition; a submit that arrives while another is in flight is refused
// without any I/O.
type Pipeline struct {
	store      storage.Store
	notifier   *notify.Notifier
	logger     logger.Logger
	resetDelay time.Duration
	onReset    func()

	mu      sync.Mutex
	status  Status
	userMsg string
}

func NewPipeline(store storage.Store, notifier *notify.Notifier, log logger.Logger) *Pipeline {
	return &Pipeline{
		store:      store,
		notifier:   notifier,
		logger:     log.WithFields(map[string]interface{}{"component": "registration-pipeline"}),
		resetDelay: successResetDelay,
		status:     StatusIdle,
	}
}

// SetResetDelay overrides the post-success delay. Intended for tests.
func (p *Pipeline) SetResetDelay(d time.Duration) { p.resetDelay = d }

// OnReset registers the hook invoked when the machine auto-resets after
// success.
func (p *Pipeline) OnReset(fn func()) { p.onReset = fn }

// Status returns the current state.
func (p *Pipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// UserMessage returns the user-facing message for the current state: a
// validation rule message or the generic failure message in Error, empty
// otherwise.
func (p *Pipeline) UserMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.userMsg
}

// Submit runs one attempt against the draft. Validation failures transition
// straight to Error without touching storage. The notification is dispatched
// after a successful write as a detached task; its outcome never changes the
// result. The returned status is the state the machine settled in.
func (p *Pipeline) Submit(ctx context.Context, event *models.Event, draft *Draft) Status {
	p.mu.Lock()
	switch p.status {
	case StatusSubmitting:
		// Structural guard at the UI boundary plus this assert keep attempts
		// serialized.
		p.mu.Unlock()
		p.logger.Warn("submit refused: attempt already in flight", nil)
		return StatusSubmitting
	case StatusSuccess:
		p.mu.Unlock()
		return StatusSuccess
	}

	if result := Validate(draft); !result.Valid {
		p.status = StatusError
		p.userMsg = result.Reason
		p.mu.Unlock()
		return StatusError
	}

	p.status = StatusSubmitting
	p.userMsg = ""
	p.mu.Unlock()

	start := time.Now()

	var eventID string
	if event != nil {
		eventID = event.ID
	}
	record := Compose(eventID, draft)

	if err := p.store.Insert(ctx, storage.TableEventRegistrations, []storage.Record{record}); err != nil {
		p.logger.Error("registration storage write failed", map[string]interface{}{
			"error":   err.Error(),
			"eventId": eventID,
		})
		metrics.SubmissionsFailed.WithLabelValues(metricForm, "DATABASE_INSERT_FAILED").Inc()

		p.mu.Lock()
		p.status = StatusError
		p.userMsg = msgSubmitFailed
		p.mu.Unlock()
		return StatusError
	}

	// Fire-and-forget: the submission is already committed, so the
	// notification result is discarded after logging inside the notifier.
	message := FormatTeamMessage(event, draft)
	go p.notifier.Notify(context.WithoutCancel(ctx), message)

	metrics.SubmissionsCompleted.WithLabelValues(metricForm).Inc()
	metrics.SubmissionDuration.WithLabelValues(metricForm).Observe(time.Since(start).Seconds())

	p.mu.Lock()
	p.status = StatusSuccess
	p.userMsg = ""
	p.mu.Unlock()

	p.logger.Info("registration submitted", map[string]interface{}{
		"eventId": eventID,
	})

	time.AfterFunc(p.resetDelay, p.autoReset)
	return StatusSuccess
}

// Retry returns the machine from Error to Idle. The draft is untouched; the
// caller resubmits after editing. Any other state is left alone.
func (p *Pipeline) Retry() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == StatusError {
		p.status = StatusIdle
		p.userMsg = ""
	}
}

// Close handles a close/cancel request from the hosting UI. A request while
// Submitting is ignored: the in-flight attempt cannot be abandoned. From any
// other state the machine returns to Idle for a fresh draft.
func (p *Pipeline) Close() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == StatusSubmitting {
		return false
	}
	p.status = StatusIdle
	p.userMsg = ""
	return true
}

func (p *Pipeline) autoReset() {
	p.mu.Lock()
	if p.status != StatusSuccess {
		p.mu.Unlock()
		return
	}
	p.status = StatusIdle
	p.userMsg = ""
	fn := p.onReset
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}
