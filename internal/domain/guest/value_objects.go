package guest

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email format")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type DocumentType string

const (
	DocumentNationalID DocumentType = "NATIONAL_ID"
	DocumentPassport   DocumentType = "PASSPORT"
)

func (d DocumentType) String() string {
	return string(d)
}

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentNationalID, DocumentPassport:
		return true
	default:
		return false
	}
}

func NewDocumentType(s string) (DocumentType, error) {
	d := DocumentType(s)
	if !d.IsValid() {
		return "", ErrInvalidDocument
	}
	return d, nil
}

type Document struct {
	docType DocumentType
	number  string
}

func NewDocument(docType DocumentType, number string) (Document, error) {
	if !docType.IsValid() {
		return Document{}, ErrInvalidDocument
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return Document{}, ErrEmptyDocumentValue
	}
	return Document{docType: docType, number: number}, nil
}

func ReconstructDocument(docType DocumentType, number string) Document {
	return Document{docType: docType, number: number}
}

func (d Document) Type() DocumentType { return d.docType }
func (d Document) Number() string     { return d.number }
