// Package command parses shell input lines and dispatches them against
// the address book. Dispatch is the single error boundary: domain
// errors become display text here and never escape a call.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/smileynet/rolo/internal/book"
	"github.com/smileynet/rolo/internal/contact"
)

// Responses shared with front ends.
const (
	Greeting    = "How can I help you?"
	PromptLabel = "Enter a command: "
)

// User-facing response strings.
const (
	msgInvalidCommand = "Invalid command. Please try again"
	msgMissingArgs    = "Give me name and phone please"
	msgEnterUserName  = "Enter user name"
	msgContactAdded   = "Contact added successfully"
	msgPhoneUpdated   = "Phone number updated"
	msgPhoneMissing   = "Phone is missing"
	msgNoContacts     = "No contacts found"
	msgGoodBye        = "Good bye!"
	msgBatchUsage     = "Invalid 'show batch' command. Use 'show batch N', where N is the batch size."
	msgLoaded         = "Address book loaded successfully"
	promptPause       = "Press Enter to continue..."
	promptSavePath    = "Enter the filename to save the address book: "
	promptLoadPath    = "Enter the filename to load the address book from: "
)

// ErrMissingArgs marks commands invoked with too few tokens.
var ErrMissingArgs = errors.New("command: missing arguments")

// errNoName marks name-taking commands invoked without a name.
var errNoName = errors.New("command: name argument required")

// MissingArgsError reports a command given fewer tokens than it needs.
type MissingArgsError struct {
	Verb string
	Want int
	Got  int
}

func (e *MissingArgsError) Error() string {
	return fmt.Sprintf("command: %s needs at least %d arguments, got %d", e.Verb, e.Want, e.Got)
}

// Unwrap returns ErrMissingArgs for errors.Is checks.
func (e *MissingArgsError) Unwrap() error { return ErrMissingArgs }

// Storer persists and restores contact payloads. *store.FileStore
// satisfies it.
type Storer interface {
	Save(path string, contacts []contact.Payload) error
	Load(path string) ([]contact.Payload, error)
}

// Interactor supplies mid-command interaction: prompted input,
// incremental output, and pagination pauses.
type Interactor interface {
	Prompt(label string) (string, error)
	Show(text string)
	Pause(label string) error
}

// Session is the state a dispatched command operates on.
type Session struct {
	Book        *book.Book
	Store       Storer
	IO          Interactor
	DefaultPath string           // fallback book path for save/load prompts
	Now         func() time.Time // clock for birthday arithmetic
}

// Result is the outcome of one dispatched command.
type Result struct {
	Text string // user-facing response, printed as-is
	Quit bool   // terminate the loop after printing
}

// twoWordVerbs are verbs spelled as two tokens. They match ahead of
// single-token verbs so "show all" is not parsed as verb "show".
var twoWordVerbs = map[string]bool{
	"show all":   true,
	"show batch": true,
	"good bye":   true,
}

// Parse lowercases line, tokenizes it on whitespace, and splits the
// verb from its arguments.
func Parse(line string) (verb string, args []string) {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 {
		return "", nil
	}
	if len(tokens) >= 2 {
		if two := tokens[0] + " " + tokens[1]; twoWordVerbs[two] {
			return two, tokens[2:]
		}
	}
	return tokens[0], tokens[1:]
}

// Dispatcher routes input lines to registered handlers.
type Dispatcher struct {
	registry *Registry
	session  *Session
}

// NewDispatcher creates a Dispatcher over s with the full command table.
// A nil session clock defaults to time.Now.
func NewDispatcher(s *Session) *Dispatcher {
	if s.Now == nil {
		s.Now = time.Now
	}
	d := &Dispatcher{registry: NewRegistry(), session: s}

	d.registry.Register("hello", handleHello)
	d.registry.Register("add", handleAdd)
	d.registry.Register("change", handleChange)
	d.registry.Register("phone", handlePhone)
	d.registry.Register("show all", handleShowAll)
	d.registry.Register("birthday", handleBirthday)
	d.registry.Register("delete", handleDelete)
	d.registry.Register("show batch", handleShowBatch)
	d.registry.Register("save", handleSave)
	d.registry.Register("load", handleLoad)
	d.registry.Register("search", handleSearch)
	d.registry.Register("good bye", handleQuit)
	d.registry.Register("close", handleQuit)
	d.registry.Register("exit", handleQuit)

	return d
}

// Dispatch executes one input line and returns its response. Handler
// errors are rendered to display text; none propagate.
func (d *Dispatcher) Dispatch(line string) Result {
	verb, args := Parse(line)
	handler, ok := d.registry.Lookup(verb)
	if !ok {
		return Result{Text: msgInvalidCommand}
	}
	res, err := handler(d.session, args)
	if err != nil {
		return Result{Text: renderError(err)}
	}
	return res
}

// renderError converts a handler error to its user-facing message.
func renderError(err error) string {
	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var nferr *contact.NotFoundError
	if errors.As(err, &nferr) && nferr.Kind == contact.KindContact {
		return fmt.Sprintf("Contact '%s' not found", nferr.Name)
	}
	if errors.Is(err, ErrMissingArgs) {
		return msgMissingArgs
	}
	if errors.Is(err, errNoName) {
		return msgEnterUserName
	}
	// Interrupted prompts end quietly; the loop exits on the next read.
	if errors.Is(err, io.EOF) {
		return ""
	}
	return err.Error()
}
