package entities

import (
	"errors"
	"fmt"
	"insurance/internal/domain/validation"
	"strings"
)

var ErrFollowSelf = errors.New("a user cannot follow themselves")

// User is a social-app profile. Following is tracked by user name.
type User struct {
	userName       string
	bio            string
	profilePicture string
	following      []string
}

// UserProfile is the public, serializable view of a User.
type UserProfile struct {
	UserName       string `json:"user_name" yaml:"user_name"`
	Bio            string `json:"bio" yaml:"bio"`
	ProfilePicture string `json:"profile_picture" yaml:"profile_picture"`
}

type userParams struct {
	UserName string `json:"user_name" validate:"required"`
}

func NewUser(userName, bio, profilePicture string) (*User, error) {
	p := userParams{UserName: strings.TrimSpace(userName)}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return &User{
		userName:       p.UserName,
		bio:            bio,
		profilePicture: profilePicture,
	}, nil
}

func (u *User) UserName() string { return u.userName }

// Follow records that u follows other and returns a short activity line.
func (u *User) Follow(other *User) (string, error) {
	if other == nil {
		return "", validation.New("user", "required", nil)
	}
	if other.userName == u.userName {
		return "", ErrFollowSelf
	}
	for _, name := range u.following {
		if name == other.userName {
			return fmt.Sprintf("%s already follows %s", u.userName, other.userName), nil
		}
	}
	u.following = append(u.following, other.userName)
	return fmt.Sprintf("%s followed %s", u.userName, other.userName), nil
}

// Following returns a copy of the names u follows, in follow order.
func (u *User) Following() []string {
	return append([]string(nil), u.following...)
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		UserName:       u.userName,
		Bio:            u.bio,
		ProfilePicture: u.profilePicture,
	}
}
