package entities

// QuestionType classifies a form question by the controls it contains.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionCheckbox       QuestionType = "checkbox"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionParagraph      QuestionType = "paragraph"
	QuestionUnknown        QuestionType = "unknown"
)
