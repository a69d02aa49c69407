package form

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"formrunner/domain/entities"
	"formrunner/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Protocol phase failures the caller can branch on. Anything else that
// goes wrong inside a single question is logged and skipped; a partly
// answered form can still submit.
var (
	ErrFormNotFound   = errors.New("form did not become visible")
	ErrNoQuestions    = errors.New("no questions found on the form")
	ErrNoSubmitButton = errors.New("submit button not found")
	ErrUnconfirmed    = errors.New("submission not confirmed")
)

// Selector cascades for the Google Forms layout. Each cascade is tried
// in order; the first hit wins.
var (
	formContainerSelectors = []string{
		".freebirdFormviewerViewFormCard",
		".freebirdFormviewerViewCenteredContent",
		".freebirdFormviewerViewFormContent",
		"form.freebirdFormviewerViewFormForm",
	}

	questionSelectors = []string{
		"div[role='listitem']",
		".freebirdFormviewerComponentsQuestionBaseRoot",
		".freebirdFormviewerViewItemsItemItem",
	}

	questionTitleSelectors = []string{
		"div[role='heading']",
		".freebirdFormviewerComponentsQuestionBaseTitle",
		".freebirdFormviewerViewItemsItemItemTitle",
		"span[class*='Title']",
	}

	submitButtonSelectors = []string{
		"div[role='button']:has-text('Submit')",
		".freebirdFormviewerViewNavigationSubmitButton",
		"div[jsname='M2UYVd']",
	}

	confirmationSelectors = []string{
		"text=Your response has been recorded",
		".freebirdFormviewerViewResponseConfirmationMessage",
	}

	confirmationURLPattern = "**/formResponse*"

	// Google marks the free-form radio option with this data-value.
	otherOptionValue = "__other_option__"
)

type question struct {
	el   interfaces.Element
	text string
	kind entities.QuestionType
}

// Filler drives one session through a complete form submission. It is
// stateless across submissions and safe for concurrent use.
type Filler struct {
	logger         *logrus.Logger
	answers        *ResponsePool
	readyTimeout   time.Duration
	confirmTimeout time.Duration
}

func NewFiller(logger *logrus.Logger) *Filler {
	return &Filler{
		logger:         logger,
		answers:        NewResponsePool(),
		readyTimeout:   30 * time.Second,
		confirmTimeout: 10 * time.Second,
	}
}

// Submit navigates to the form, answers every detected question with
// the given identity, submits, and waits for confirmation. A nil return
// means the submission was confirmed.
func (f *Filler) Submit(ctx context.Context, sess interfaces.Session, ident entities.Identity, formURL string) error {
	if err := sess.Navigate(ctx, formURL); err != nil {
		return fmt.Errorf("load form: %w", err)
	}
	if err := sess.WaitReady(ctx); err != nil {
		// Readiness here is advisory; the container wait below decides.
		f.logger.Debugf("page not settled after navigation: %v", err)
	}

	if !f.waitForForm(ctx, sess) {
		return ErrFormNotFound
	}

	questions := f.detectQuestions(sess)
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	f.logger.Debugf("found %d questions", len(questions))

	for i, q := range questions {
		if err := f.answer(q, i == 0, ident); err != nil {
			f.logger.Debugf("question %d (%q) skipped: %v", i+1, q.text, err)
		}
	}

	if err := f.submit(sess); err != nil {
		return err
	}

	if !f.verify(ctx, sess) {
		return ErrUnconfirmed
	}
	return nil
}

// waitForForm waits for a known form container, falling back to any
// visible question item for forms with unrecognized chrome.
func (f *Filler) waitForForm(ctx context.Context, sess interfaces.Session) bool {
	for _, sel := range formContainerSelectors {
		if err := sess.WaitVisible(ctx, sel, 5*time.Second); err == nil {
			return true
		}
	}
	return sess.WaitVisible(ctx, questionSelectors[0], f.readyTimeout) == nil
}

func (f *Filler) detectQuestions(sess interfaces.Session) []question {
	for _, sel := range questionSelectors {
		els := sess.Find(sel)
		if len(els) == 0 {
			continue
		}
		questions := make([]question, 0, len(els))
		for _, el := range els {
			if !el.Visible() {
				continue
			}
			questions = append(questions, question{
				el:   el,
				text: questionText(el),
				kind: classify(el),
			})
		}
		if len(questions) > 0 {
			return questions
		}
	}
	return nil
}

func questionText(el interfaces.Element) string {
	for _, sel := range questionTitleSelectors {
		if title := el.FindOne(sel); title != nil {
			if text := strings.TrimSpace(title.Text()); text != "" {
				return text
			}
		}
	}
	return "Unknown Question"
}

// classify guesses the question type from the controls it contains.
func classify(el interfaces.Element) entities.QuestionType {
	if len(el.Find("div[role='radio']")) > 0 {
		return entities.QuestionMultipleChoice
	}
	if len(el.Find("div[role='checkbox']")) > 0 {
		return entities.QuestionCheckbox
	}
	if el.FindOne("input[type='text']") != nil {
		return entities.QuestionShortAnswer
	}
	if el.FindOne("textarea") != nil {
		return entities.QuestionParagraph
	}
	return entities.QuestionUnknown
}

func (f *Filler) answer(q question, first bool, ident entities.Identity) error {
	switch q.kind {
	case entities.QuestionMultipleChoice:
		return f.pickRadio(q)
	case entities.QuestionCheckbox:
		return f.tickCheckboxes(q)
	case entities.QuestionShortAnswer:
		return f.fillText(q, first, ident)
	case entities.QuestionParagraph:
		return f.fillParagraph(q)
	default:
		return fmt.Errorf("unrecognized question layout")
	}
}

// fillText answers a short-answer question. The first question is
// assumed to be the name field; elsewhere the label text decides which
// identity attribute fits, falling back to the response pool.
func (f *Filler) fillText(q question, first bool, ident entities.Identity) error {
	input := q.el.FindOne("input[type='text']")
	if input == nil {
		input = q.el.FindOne("input:not([type='hidden'])")
	}
	if input == nil || !input.Visible() {
		return fmt.Errorf("no visible text input")
	}

	label := strings.ToLower(q.text)
	switch {
	case first || strings.Contains(label, "name"):
		return input.Fill(ident.FullName)
	case strings.Contains(label, "email") || strings.Contains(label, "e-mail"):
		return input.Fill(ident.Email)
	case strings.Contains(label, "age") && ident.Age > 0:
		return input.Fill(strconv.Itoa(ident.Age))
	default:
		return input.Fill(f.answers.Short())
	}
}

func (f *Filler) fillParagraph(q question) error {
	area := q.el.FindOne("textarea")
	if area == nil || !area.Visible() {
		return fmt.Errorf("no visible textarea")
	}
	return area.Fill(f.answers.Paragraph())
}

// pickRadio clicks one random visible option, preferring options that
// are not the free-form "Other" choice.
func (f *Filler) pickRadio(q question) error {
	options := visibleOnly(q.el.Find("div[role='radio']"))
	if len(options) == 0 {
		return fmt.Errorf("no visible options")
	}

	candidates := options[:0:0]
	for _, opt := range options {
		if opt.Attribute("data-value") != otherOptionValue {
			candidates = append(candidates, opt)
		}
	}
	if len(candidates) == 0 {
		candidates = options
	}

	return candidates[rand.Intn(len(candidates))].Click()
}

// tickCheckboxes checks between one and three random boxes.
func (f *Filler) tickCheckboxes(q question) error {
	boxes := visibleOnly(q.el.Find("div[role='checkbox']"))
	if len(boxes) == 0 {
		return fmt.Errorf("no visible checkboxes")
	}

	limit := len(boxes)
	if limit > 3 {
		limit = 3
	}
	count := 1 + rand.Intn(limit)

	rand.Shuffle(len(boxes), func(i, j int) {
		boxes[i], boxes[j] = boxes[j], boxes[i]
	})
	for _, box := range boxes[:count] {
		if err := box.Click(); err != nil {
			return fmt.Errorf("checkbox click: %w", err)
		}
	}
	return nil
}

func (f *Filler) submit(sess interfaces.Session) error {
	for _, sel := range submitButtonSelectors {
		button := sess.FindOne(sel)
		if button == nil || !button.Visible() {
			continue
		}
		if err := button.Click(); err != nil {
			return fmt.Errorf("submit click: %w", err)
		}
		return nil
	}
	return ErrNoSubmitButton
}

// verify waits for any of the known confirmation signals: the
// confirmation text, the confirmation container, or the formResponse
// URL. The result is a plain boolean; how trustworthy the heuristic is
// stays the form's problem, not the coordinator's.
func (f *Filler) verify(ctx context.Context, sess interfaces.Session) bool {
	for _, sel := range confirmationSelectors {
		if err := sess.WaitVisible(ctx, sel, f.confirmTimeout); err == nil {
			return true
		}
	}
	return sess.WaitURL(ctx, confirmationURLPattern, f.confirmTimeout) == nil
}

func visibleOnly(els []interfaces.Element) []interfaces.Element {
	visible := els[:0:0]
	for _, el := range els {
		if el.Visible() {
			visible = append(visible, el)
		}
	}
	return visible
}
