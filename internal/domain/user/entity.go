package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable identity behind a verified contact identifier. A user is
// created on first successful verification with an empty profile; name, email
// and location arrive later through profile completion.
type User struct {
	id         uuid.UUID
	phone      Phone
	name       string
	email      string
	city       string
	area       string
	trustScore float64
	totalGiven int
	totalTaken int
	isVerified bool
	createdAt  time.Time
}

func NewUser(phone Phone, now time.Time) *User {
	return &User{
		id:         uuid.New(),
		phone:      phone,
		isVerified: true,
		createdAt:  now,
	}
}

func Reconstruct(
	id uuid.UUID,
	phone Phone,
	name, email, city, area string,
	trustScore float64,
	totalGiven, totalTaken int,
	isVerified bool,
	createdAt time.Time,
) *User {
	return &User{
		id:         id,
		phone:      phone,
		name:       name,
		email:      email,
		city:       city,
		area:       area,
		trustScore: trustScore,
		totalGiven: totalGiven,
		totalTaken: totalTaken,
		isVerified: isVerified,
		createdAt:  createdAt,
	}
}

func (u *User) ID() uuid.UUID       { return u.id }
func (u *User) Phone() Phone        { return u.phone }
func (u *User) Name() string        { return u.name }
func (u *User) Email() string       { return u.email }
func (u *User) City() string        { return u.city }
func (u *User) Area() string        { return u.area }
func (u *User) TrustScore() float64 { return u.trustScore }
func (u *User) TotalGiven() int     { return u.totalGiven }
func (u *User) TotalTaken() int     { return u.totalTaken }
func (u *User) IsVerified() bool    { return u.isVerified }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) CompleteProfile(name Name, email Email, city, area string) {
	u.name = name.Value()
	u.email = email.Value()
	u.city = city
	u.area = area
}
