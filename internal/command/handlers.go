package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smileynet/rolo/internal/contact"
)

func handleHello(s *Session, args []string) (Result, error) {
	return Result{Text: Greeting}, nil
}

// handleAdd builds the record fully before inserting, so a bad phone or
// birthday never leaves a partial entry behind.
func handleAdd(s *Session, args []string) (Result, error) {
	if len(args) < 2 {
		return Result{}, &MissingArgsError{Verb: "add", Want: 2, Got: len(args)}
	}
	birthday := ""
	if len(args) > 2 {
		birthday = args[2]
	}
	r, err := contact.NewRecord(args[0], birthday)
	if err != nil {
		return Result{}, err
	}
	if err := r.AddPhone(args[1]); err != nil {
		return Result{}, err
	}
	s.Book.Add(r)
	return Result{Text: msgContactAdded}, nil
}

func handleChange(s *Session, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errNoName
	}
	name := args[0]
	r, ok := s.Book.Find(name)
	if !ok {
		return Result{}, &contact.NotFoundError{Kind: contact.KindContact, Name: name}
	}
	if len(args) < 2 {
		return Result{}, &contact.ValidationError{Field: "phone", Message: msgPhoneMissing}
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return Result{Text: noPhones(name)}, nil
	}
	if err := r.EditPhone(phones[0], args[1]); err != nil {
		return Result{}, err
	}
	return Result{Text: msgPhoneUpdated}, nil
}

func handlePhone(s *Session, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errNoName
	}
	name := args[0]
	r, ok := s.Book.Find(name)
	if !ok {
		return Result{}, &contact.NotFoundError{Kind: contact.KindContact, Name: name}
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return Result{Text: noPhones(name)}, nil
	}
	return Result{Text: strings.Join(phones, ", ")}, nil
}

func handleShowAll(s *Session, args []string) (Result, error) {
	if s.Book.Len() == 0 {
		return Result{Text: msgNoContacts}, nil
	}
	return Result{Text: joinRecords(s.Book.Records())}, nil
}

func handleBirthday(s *Session, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errNoName
	}
	name := args[0]
	r, ok := s.Book.Find(name)
	if !ok {
		return Result{}, &contact.NotFoundError{Kind: contact.KindContact, Name: name}
	}
	days, ok := r.DaysToBirthday(s.Now())
	if !ok {
		return Result{Text: fmt.Sprintf("No birthday set for contact '%s'", name)}, nil
	}
	return Result{Text: strconv.Itoa(days)}, nil
}

func handleDelete(s *Session, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errNoName
	}
	name := args[0]
	if !s.Book.Delete(name) {
		return Result{}, &contact.NotFoundError{Kind: contact.KindContact, Name: name}
	}
	return Result{Text: fmt.Sprintf("Contact '%s' deleted successfully", name)}, nil
}

// handleShowBatch pages through the book N contacts at a time, pausing
// for acknowledgement between batches.
func handleShowBatch(s *Session, args []string) (Result, error) {
	size := batchSize(args)
	if size < 1 {
		return Result{Text: msgBatchUsage}, nil
	}
	if s.Book.Len() == 0 {
		return Result{Text: msgNoContacts}, nil
	}
	first := true
	for batch := range s.Book.Batches(size) {
		if !first {
			if err := s.IO.Pause(promptPause); err != nil {
				return Result{}, err
			}
		}
		first = false
		for _, r := range batch {
			s.IO.Show(r.String())
		}
	}
	return Result{}, nil
}

// batchSize parses a strictly numeric batch argument; 0 means invalid.
func batchSize(args []string) int {
	if len(args) != 1 || args[0] == "" {
		return 0
	}
	for i := 0; i < len(args[0]); i++ {
		if args[0][i] < '0' || args[0][i] > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0
	}
	return n
}

// handleSave prompts for a destination and writes the book there. An
// empty answer falls back to the session's default path.
func handleSave(s *Session, args []string) (Result, error) {
	path, err := s.IO.Prompt(promptSavePath)
	if err != nil {
		return Result{}, err
	}
	if path == "" {
		path = s.DefaultPath
	}
	if err := s.Store.Save(path, s.Book.Snapshot()); err != nil {
		return Result{}, err
	}
	return Result{Text: fmt.Sprintf("Address book saved to %s", path)}, nil
}

// handleLoad prompts for a source and replaces the book's contents with
// the file's records.
func handleLoad(s *Session, args []string) (Result, error) {
	path, err := s.IO.Prompt(promptLoadPath)
	if err != nil {
		return Result{}, err
	}
	if path == "" {
		path = s.DefaultPath
	}
	payloads, err := s.Store.Load(path)
	if err != nil {
		return Result{}, err
	}
	if err := s.Book.Restore(payloads); err != nil {
		return Result{}, err
	}
	return Result{Text: msgLoaded}, nil
}

func handleSearch(s *Session, args []string) (Result, error) {
	query := strings.Join(args, " ")
	found := s.Book.Search(query)
	if len(found) == 0 {
		return Result{Text: fmt.Sprintf("No contacts found matching '%s'", query)}, nil
	}
	return Result{Text: joinRecords(found)}, nil
}

func handleQuit(s *Session, args []string) (Result, error) {
	return Result{Text: msgGoodBye, Quit: true}, nil
}

func noPhones(name string) string {
	return fmt.Sprintf("No phones found for contact '%s'", name)
}

func joinRecords(records []*contact.Record) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
