package application

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ptitevents/eventapp/internal/domain/entity"
	"github.com/ptitevents/eventapp/pkg/validation"
)

// RegisterInput is a new-account draft. Profile fields not listed here
// (student id, class, date of birth, address, avatar) start empty and are
// filled in later through UpdateProfile.
type RegisterInput struct {
	Username string      `json:"username" validate:"required"`
	FullName string      `json:"full_name" validate:"required"`
	Email    string      `json:"email" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,oneof=student organizer"`
}

// Register creates an account. Username and email must be unused
// (case-sensitive exact match, as the snapshot format has always compared
// them). Returns the new account id.
func (s *Store) Register(in RegisterInput) (string, error) {
	if details := validation.Struct(in); details != nil {
		return "", validationErr(details)
	}
	if !validation.IsValidEmail(in.Email) {
		return "", validationErr(map[string]string{"email": "must be a valid email"})
	}
	if !validation.IsValidPassword(in.Password) {
		return "", validationErr(map[string]string{"password": "must be 8-24 characters with lowercase, uppercase, digit and one of @$!%*?&"})
	}

	for _, acc := range s.state.Accounts {
		if acc.Username == in.Username {
			return "", ErrDuplicateUsername
		}
		if acc.Email == in.Email {
			return "", ErrDuplicateEmail
		}
	}

	sealed, err := s.creds.Seal(in.Password)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	err = s.mutate(func(st *entity.Snapshot) error {
		st.Accounts = append(st.Accounts, entity.Account{
			ID:       id,
			Username: in.Username,
			Email:    in.Email,
			Password: sealed,
			Role:     in.Role,
			FullName: in.FullName,
			Gender:   entity.GenderMale,
		})
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{"account_id": id, "username": in.Username, "role": in.Role}).Info("account registered")
	return id, nil
}

// Login authenticates by username or email plus password and makes the
// matching account the current session. The caller is not told whether the
// identifier or the password was wrong.
func (s *Store) Login(identifier, password string) (*entity.Account, error) {
	for _, acc := range s.state.Accounts {
		if acc.Username != identifier && acc.Email != identifier {
			continue
		}
		if !s.creds.Verify(acc.Password, password) {
			continue
		}
		matched := acc
		err := s.mutate(func(st *entity.Snapshot) error {
			sess := matched
			st.Session = &sess
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.logger.WithFields(logrus.Fields{"account_id": matched.ID, "username": matched.Username}).Info("login")
		out := matched
		return &out, nil
	}
	s.logger.WithField("identifier", identifier).Debug("login rejected")
	return nil, ErrInvalidCredentials
}

// Logout clears the session.
func (s *Store) Logout() error {
	return s.mutate(func(st *entity.Snapshot) error {
		st.Session = nil
		return nil
	})
}

// ProfileUpdate is a partial update over the session account. Nil fields
// are left untouched; username and role are immutable and deliberately not
// representable here.
type ProfileUpdate struct {
	FullName    *string
	StudentID   *string
	ClassName   *string
	Email       *string
	DateOfBirth *string
	Gender      *entity.Gender
	Address     *string
	Avatar      *string
}

// UpdateProfile applies the patch to the authenticated account and
// refreshes the session snapshot.
func (s *Store) UpdateProfile(patch ProfileUpdate) error {
	cur := s.state.Session
	if cur == nil {
		return ErrNotAuthenticated
	}
	if patch.FullName != nil && *patch.FullName == "" {
		return validationErr(map[string]string{"full_name": "is required"})
	}
	if patch.Email != nil && !validation.IsValidEmail(*patch.Email) {
		return validationErr(map[string]string{"email": "must be a valid email"})
	}
	if patch.Gender != nil && *patch.Gender != entity.GenderMale && *patch.Gender != entity.GenderFemale {
		return validationErr(map[string]string{"gender": "must be one of: male, female"})
	}

	err := s.mutate(func(st *entity.Snapshot) error {
		for i := range st.Accounts {
			if st.Accounts[i].ID != cur.ID {
				continue
			}
			applyProfile(&st.Accounts[i], patch)
			sess := st.Accounts[i]
			st.Session = &sess
			return nil
		}
		return ErrAccountNotFound
	})
	if err != nil {
		return err
	}
	s.logger.WithField("account_id", cur.ID).Info("profile updated")
	return nil
}

func applyProfile(acc *entity.Account, patch ProfileUpdate) {
	if patch.FullName != nil {
		acc.FullName = *patch.FullName
	}
	if patch.StudentID != nil {
		acc.StudentID = *patch.StudentID
	}
	if patch.ClassName != nil {
		acc.ClassName = *patch.ClassName
	}
	if patch.Email != nil {
		acc.Email = *patch.Email
	}
	if patch.DateOfBirth != nil {
		acc.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Gender != nil {
		acc.Gender = *patch.Gender
	}
	if patch.Address != nil {
		acc.Address = *patch.Address
	}
	if patch.Avatar != nil {
		acc.Avatar = *patch.Avatar
	}
}

// DeleteAccount removes the authenticated account and clears the session.
// Participant references the account left behind in events are not cleaned
// up; they simply stop resolving to a profile.
func (s *Store) DeleteAccount() error {
	cur := s.state.Session
	if cur == nil {
		return ErrNotAuthenticated
	}
	err := s.mutate(func(st *entity.Snapshot) error {
		kept := st.Accounts[:0]
		for _, acc := range st.Accounts {
			if acc.ID != cur.ID {
				kept = append(kept, acc)
			}
		}
		st.Accounts = kept
		st.Session = nil
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.WithField("account_id", cur.ID).Info("account deleted")
	return nil
}

// ResetPassword replaces the password of the account registered under
// email. No authentication is required; this backs the forgot-password
// flow, which trusts local access to the machine the way the rest of the
// app does.
func (s *Store) ResetPassword(email, newPassword string) error {
	if !validation.IsValidPassword(newPassword) {
		return validationErr(map[string]string{"password": "must be 8-24 characters with lowercase, uppercase, digit and one of @$!%*?&"})
	}
	sealed, err := s.creds.Seal(newPassword)
	if err != nil {
		return err
	}
	err = s.mutate(func(st *entity.Snapshot) error {
		for i := range st.Accounts {
			if st.Accounts[i].Email != email {
				continue
			}
			st.Accounts[i].Password = sealed
			if st.Session != nil && st.Session.ID == st.Accounts[i].ID {
				sess := st.Accounts[i]
				st.Session = &sess
			}
			return nil
		}
		return ErrAccountNotFound
	})
	if err != nil {
		return err
	}
	s.logger.WithField("email", email).Info("password reset")
	return nil
}
