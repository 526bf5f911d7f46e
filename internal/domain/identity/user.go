package identity

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stayhub/backend/internal/domain/shared"
)

// VerificationStatus is the identity verification state of a user
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

// DocumentStatus is the review state of an uploaded document
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Document is an identity document uploaded for verification.
// Documents are append-only; a rejected document stays on record and
// the user uploads a new one.
type Document struct {
	shared.BaseEntity
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type       string         `gorm:"not null;size:64"`
	FileName   string         `gorm:"not null;size:255"`
	StorageKey string         `gorm:"not null;size:500"`
	Status     DocumentStatus `gorm:"not null;size:16;default:'pending'"`
	ReviewNote string         `gorm:"size:500"`
}

// TableName returns the database table name
func (Document) TableName() string {
	return "identity_documents"
}

// User is the user aggregate root holding profile and credentials
type User struct {
	shared.BaseAggregateRoot
	Email              string             `gorm:"not null;size:255;uniqueIndex"`
	PasswordHash       string             `gorm:"not null;size:255"`
	FirstName          string             `gorm:"size:128"`
	LastName           string             `gorm:"size:128"`
	Phone              string             `gorm:"size:32"`
	Address            string             `gorm:"size:500"`
	City               string             `gorm:"size:128"`
	Country            string             `gorm:"size:128"`
	VerificationStatus VerificationStatus `gorm:"not null;size:16;default:'unverified'"`
	Documents          []Document         `gorm:"foreignKey:UserID"`
}

// TableName returns the database table name
func (User) TableName() string {
	return "users"
}

// NewUser creates a new unverified user with a hashed password
func NewUser(email, password, firstName, lastName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "a valid email address is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("WEAK_PASSWORD", "password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Email:              email,
		PasswordHash:       string(hash),
		FirstName:          strings.TrimSpace(firstName),
		LastName:           strings.TrimSpace(lastName),
		VerificationStatus: VerificationUnverified,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UpdateProfile updates the contact fields
func (u *User) UpdateProfile(firstName, lastName, phone, address, city, country string) error {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return shared.NewDomainError("INVALID_NAME", "first name is required")
	}
	u.FirstName = firstName
	u.LastName = strings.TrimSpace(lastName)
	u.Phone = strings.TrimSpace(phone)
	u.Address = strings.TrimSpace(address)
	u.City = strings.TrimSpace(city)
	u.Country = strings.TrimSpace(country)
	u.IncrementVersion()
	return nil
}

// AddDocument appends a verification document and moves the user to
// pending review unless already verified
func (u *User) AddDocument(docType, fileName, storageKey string) (*Document, error) {
	docType = strings.TrimSpace(docType)
	if docType == "" {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "document type is required")
	}
	if storageKey == "" {
		return nil, shared.NewDomainError("INVALID_DOCUMENT", "storage key is required")
	}
	doc := Document{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     u.ID,
		Type:       docType,
		FileName:   fileName,
		StorageKey: storageKey,
		Status:     DocumentPending,
	}
	u.Documents = append(u.Documents, doc)
	if u.VerificationStatus != VerificationVerified {
		u.VerificationStatus = VerificationPending
	}
	u.IncrementVersion()
	return &u.Documents[len(u.Documents)-1], nil
}

// ReviewDocument approves or rejects a pending document and updates
// the overall verification status
func (u *User) ReviewDocument(docID uuid.UUID, approved bool, note string) error {
	for i := range u.Documents {
		if u.Documents[i].ID != docID {
			continue
		}
		if u.Documents[i].Status != DocumentPending {
			return shared.ErrInvalidState
		}
		if approved {
			u.Documents[i].Status = DocumentApproved
			u.VerificationStatus = VerificationVerified
		} else {
			u.Documents[i].Status = DocumentRejected
			if u.VerificationStatus != VerificationVerified {
				u.VerificationStatus = VerificationRejected
			}
		}
		u.Documents[i].ReviewNote = note
		u.IncrementVersion()
		return nil
	}
	return shared.ErrNotFound
}
