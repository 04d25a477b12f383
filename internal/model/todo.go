package model

// Default titles given to freshly created entities
const (
	DefaultSubjectTitle = "새로운 그룹"
	DefaultTodoTitle    = "새로운 계획"
)

// Todo represents a single actionable item inside a subject
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Done      bool   `json:"done"`
	SubjectID int64  `json:"subjectId"`
}

// Subject represents a named group of todos
type Subject struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Direction is the way a todo moves between adjacent subjects
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// CountDone returns how many of the given todos are done
func CountDone(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if t.Done {
			n++
		}
	}
	return n
}

// IndexOfSubject returns the position of the subject with the given ID, or -1
func IndexOfSubject(subjects []Subject, id int64) int {
	for i, s := range subjects {
		if s.ID == id {
			return i
		}
	}
	return -1
}
