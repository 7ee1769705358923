package task

// Update is a partial change to a task. Nil fields are left untouched.
type Update struct {
	title       *string
	description *string
	taskStatus  *Status
}

func NewUpdate(title *string, description *string, taskStatus *Status) (Update, error) {
	if title != nil && *title == "" {
		return Update{}, ErrTitleEmpty
	}

	if taskStatus != nil {
		if _, err := NewStatus(string(*taskStatus)); err != nil {
			return Update{}, err
		}
	}

	var status *Status
	if taskStatus != nil {
		s := *taskStatus
		status = &s
	}

	return Update{
		title:       copyString(title),
		description: copyString(description),
		taskStatus:  status,
	}, nil
}

func (u Update) Title() *string {
	return copyString(u.title)
}

func (u Update) Description() *string {
	return copyString(u.description)
}

func (u Update) TaskStatus() *Status {
	if u.taskStatus == nil {
		return nil
	}

	s := *u.taskStatus

	return &s
}

func (u Update) IsEmpty() bool {
	return u.title == nil && u.description == nil && u.taskStatus == nil
}

// Apply returns a copy of t with the update applied. Id and createdAt are kept.
func (u Update) Apply(t *Task) *Task {
	updated := *t
	updated.description = copyString(t.description)

	if u.title != nil {
		updated.title = *u.title
	}

	if u.description != nil {
		updated.description = copyString(u.description)
	}

	if u.taskStatus != nil {
		updated.taskStatus = *u.taskStatus
	}

	return &updated
}

// Filter narrows ListTasks. The zero value matches every task.
type Filter struct {
	taskStatus *Status
}

func NewFilter(taskStatus *Status) Filter {
	if taskStatus == nil {
		return Filter{}
	}

	s := *taskStatus

	return Filter{taskStatus: &s}
}

func (f Filter) TaskStatus() (Status, bool) {
	if f.taskStatus == nil {
		return "", false
	}

	return *f.taskStatus, true
}

func (f Filter) Matches(t *Task) bool {
	s, ok := f.TaskStatus()

	return !ok || t.TaskStatus() == s
}
