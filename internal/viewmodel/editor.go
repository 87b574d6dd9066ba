// ABOUTME: Add/update form state holder with the write-action state machine.
// ABOUTME: Validates locally, auto-derives calories, and submits asynchronously.
package viewmodel

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/harperreed/fitlog/internal/live"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
)

// FieldState tracks who last wrote the calorie field. The explicit
// three-state value lets auto-calculation refresh its own fills without
// ever overwriting a number the user typed.
type FieldState int

const (
	FieldUntouched FieldState = iota
	FieldAutoFilled
	FieldUserEdited
)

// Validation messages, one per field.
const (
	msgMissingType = "please select an activity type"
	msgBadDuration = "duration must be a positive number"
	msgBadCalories = "calories must be a positive number"
	msgBadDistance = "distance must be a number"
	msgBadSteps    = "steps must be a whole number"
)

// EditorForm holds the raw, string-typed field values as the user
// typed them.
type EditorForm struct {
	Type     string
	Duration string
	Calories string
	Distance string
	Steps    string
	Notes    string
}

// EditorState is everything the add/update screen renders.
type EditorState struct {
	Form           EditorForm
	FieldErrors    map[string]string
	ErrorMessage   string
	Busy           bool
	SavedID        int64
	CaloriesSource FieldState
}

// EditorModel drives one add-or-update interaction. The write action
// moves Idle -> Validating -> (Invalid -> Idle with field errors) or
// (Valid -> Submitting) -> (Failure -> Idle with an error message) or
// (Success -> Idle with a cleared form and SavedID set). None of the
// intermediate states are observable beyond the Busy flag. A second
// submit while busy is ignored, so a double-tap can never double-insert.
type EditorModel struct {
	repo     storage.Repository
	weightKg float64

	mu          sync.Mutex
	editingID   int64
	editingWhen time.Time

	state  *live.Value[EditorState]
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEditor creates an editor for a new activity. weightKg personalizes
// the calorie estimate; pass 0 to use the assumed default.
func NewEditor(repo storage.Repository, weightKg float64) *EditorModel {
	if weightKg <= 0 {
		weightKg = models.AssumedWeightKg
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &EditorModel{
		repo:     repo,
		weightKg: weightKg,
		state:    live.NewValue(EditorState{FieldErrors: map[string]string{}}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// State returns the editor's state container.
func (m *EditorModel) State() *live.Value[EditorState] {
	return m.state
}

// Edit loads an existing activity into the form. Its calorie value was
// deliberate, so the calorie field counts as user-edited and
// auto-calculation leaves it alone.
func (m *EditorModel) Edit(a *models.Activity) {
	m.mu.Lock()
	m.editingID = a.ID
	m.editingWhen = a.Timestamp
	m.mu.Unlock()

	form := EditorForm{
		Type:     a.Type,
		Duration: strconv.Itoa(a.DurationMinutes),
		Calories: strconv.Itoa(a.CaloriesBurned),
	}
	if a.DistanceKm != nil {
		form.Distance = strconv.FormatFloat(*a.DistanceKm, 'f', -1, 64)
	}
	if a.Steps != nil {
		form.Steps = strconv.Itoa(*a.Steps)
	}
	if a.Notes != nil {
		form.Notes = *a.Notes
	}
	m.state.Update(func(s EditorState) EditorState {
		s.Form = form
		s.FieldErrors = map[string]string{}
		s.CaloriesSource = FieldUserEdited
		return s
	})
}

// SetType updates the activity type and refreshes the calorie estimate.
func (m *EditorModel) SetType(activityType string) {
	m.state.Update(func(s EditorState) EditorState {
		s.Form.Type = activityType
		return m.autoCalc(s)
	})
}

// SetDuration updates the duration text and refreshes the estimate.
func (m *EditorModel) SetDuration(duration string) {
	m.state.Update(func(s EditorState) EditorState {
		s.Form.Duration = duration
		return m.autoCalc(s)
	})
}

// SetCalories records a calorie value the user typed. Auto-calculation
// stops overriding the field from here on; clearing the field hands it
// back to auto-calculation.
func (m *EditorModel) SetCalories(calories string) {
	m.state.Update(func(s EditorState) EditorState {
		s.Form.Calories = calories
		if strings.TrimSpace(calories) == "" {
			s.CaloriesSource = FieldUntouched
			return m.autoCalc(s)
		}
		s.CaloriesSource = FieldUserEdited
		return s
	})
}

// SetDistance updates the distance text.
func (m *EditorModel) SetDistance(distance string) {
	m.state.Update(func(s EditorState) EditorState {
		s.Form.Distance = distance
		return s
	})
}

// SetSteps updates the steps text.
func (m *EditorModel) SetSteps(steps string) {
	m.state.Update(func(s EditorState) EditorState {
		s.Form.Steps = steps
		return s
	})
}

// SetNotes updates the notes text.
func (m *EditorModel) SetNotes(notes string) {
	m.state.Update(func(s EditorState) EditorState {
		s.Form.Notes = notes
		return s
	})
}

// autoCalc writes the calorie estimate into the form whenever an
// activity type and a positive duration are present, unless the user
// owns the field.
func (m *EditorModel) autoCalc(s EditorState) EditorState {
	if s.CaloriesSource == FieldUserEdited {
		return s
	}
	if strings.TrimSpace(s.Form.Type) == "" {
		return s
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(s.Form.Duration))
	if err != nil || minutes <= 0 {
		return s
	}
	estimate := models.EstimateCaloriesFor(s.Form.Type, minutes, m.weightKg)
	s.Form.Calories = strconv.Itoa(estimate)
	s.CaloriesSource = FieldAutoFilled
	return s
}

// Submit runs the write action. Validation is synchronous and local;
// the repository is only reached with a valid form, asynchronously.
// Ignored while a submission is already in flight.
func (m *EditorModel) Submit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.state.Get()
	if current.Busy {
		return
	}

	activity, fieldErrors := buildActivity(current.Form)
	if len(fieldErrors) > 0 {
		m.state.Update(func(s EditorState) EditorState {
			s.FieldErrors = fieldErrors
			return s
		})
		return
	}

	editingID := m.editingID
	if editingID != 0 {
		// An update rewrites the fields the form edits; the activity
		// keeps the moment it was originally logged.
		activity.ID = editingID
		activity = activity.WithTimestamp(m.editingWhen)
	}

	m.state.Update(func(s EditorState) EditorState {
		s.Busy = true
		s.FieldErrors = map[string]string{}
		s.ErrorMessage = ""
		return s
	})

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		var err error
		var id int64
		if editingID != 0 {
			err = m.repo.Update(m.ctx, activity)
			id = editingID
		} else {
			id, err = m.repo.Save(m.ctx, activity)
		}

		if m.ctx.Err() != nil {
			// Holder destroyed mid-flight. A committed write stays
			// committed; we just stop reacting to the outcome.
			return
		}
		if err != nil {
			m.state.Update(func(s EditorState) EditorState {
				s.Busy = false
				s.ErrorMessage = "could not save activity: " + err.Error()
				return s
			})
			return
		}

		m.mu.Lock()
		m.editingID = 0
		m.editingWhen = time.Time{}
		m.mu.Unlock()
		m.state.Update(func(s EditorState) EditorState {
			return EditorState{
				FieldErrors: map[string]string{},
				SavedID:     id,
			}
		})
	}()
}

// buildActivity validates the form and constructs the domain value.
// Returns field errors keyed by field name when invalid.
func buildActivity(form EditorForm) (*models.Activity, map[string]string) {
	fieldErrors := map[string]string{}

	activityType := strings.TrimSpace(form.Type)
	if activityType == "" {
		fieldErrors["type"] = msgMissingType
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(form.Duration))
	if err != nil || minutes <= 0 {
		fieldErrors["duration"] = msgBadDuration
	}

	calories, err := strconv.Atoi(strings.TrimSpace(form.Calories))
	if err != nil || calories <= 0 {
		fieldErrors["calories"] = msgBadCalories
	}

	var distance *float64
	if text := strings.TrimSpace(form.Distance); text != "" {
		km, err := strconv.ParseFloat(text, 64)
		if err != nil || km < 0 {
			fieldErrors["distance"] = msgBadDistance
		} else {
			distance = &km
		}
	}

	var steps *int
	if text := strings.TrimSpace(form.Steps); text != "" {
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			fieldErrors["steps"] = msgBadSteps
		} else {
			steps = &n
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	activity := models.NewActivity(activityType, minutes, calories)
	activity.DistanceKm = distance
	activity.Steps = steps
	if notes := strings.TrimSpace(form.Notes); notes != "" {
		activity.Notes = &notes
	}
	return activity, nil
}

// Close cancels any in-flight submission's effect on state and waits
// for the holder's goroutines.
func (m *EditorModel) Close() {
	m.cancel()
	m.wg.Wait()
}
