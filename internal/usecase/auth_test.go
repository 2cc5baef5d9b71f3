//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	domuser "eatyaar/internal/domain/user"
	"eatyaar/internal/pkg/challenge"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/config"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/pkg/jwt"
	"eatyaar/internal/pkg/ratelimit"
	"eatyaar/internal/usecase"
	"eatyaar/tests/common/builder"
	"eatyaar/tests/common/fake"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const testPhone = "9876543210"

// captureSender records the last code handed to the delivery channel.
type captureSender struct {
	lastPhone string
	lastCode  string
	fail      bool
}

func (s *captureSender) Send(_ context.Context, phone, code string) error {
	s.lastPhone = phone
	s.lastCode = code
	if s.fail {
		return errs.New("gateway unreachable")
	}
	return nil
}

type AuthUseCaseSuite struct {
	suite.Suite

	uow    *fake.UoW
	clk    *clock.FakeClock
	store  *challenge.Store
	sender *captureSender
	jwtSvc *jwt.Service
	auth   usecase.AuthUseCase
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseSuite))
}

func (s *AuthUseCaseSuite) SetupTest() {
	cfg := config.NewTestConfig()

	s.uow = fake.NewUoW()
	s.clk = clock.NewFakeClock(time.Now())
	s.store = challenge.NewStore(s.clk,
		challenge.WithTTL(cfg.Auth.CodeTTL),
		challenge.WithMaxAttempts(cfg.Auth.CodeMaxAttempts),
		challenge.WithHashCost(bcrypt.MinCost),
	)
	limiter := ratelimit.NewLimiter(s.clk,
		ratelimit.WithWindow(cfg.Auth.SendWindow),
		ratelimit.WithLimit(cfg.Auth.SendWindowLimit),
	)
	s.sender = &captureSender{}
	s.jwtSvc = jwt.NewService(cfg.JWT.Secret, time.Hour)
	s.auth = usecase.NewAuthUseCase(s.uow, s.store, limiter, s.sender, s.jwtSvc, s.clk)
}

func (s *AuthUseCaseSuite) TestSendCode() {
	s.Run("issues and delivers a code", func() {
		s.SetupTest()
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))
		s.Equal(testPhone, s.sender.lastPhone)
		s.Len(s.sender.lastCode, 6)
	})

	s.Run("invalid phone refused", func() {
		s.SetupTest()
		err := s.auth.SendCode(context.Background(), "12345")
		s.Require().ErrorIs(err, domuser.ErrInvalidPhone)
	})

	s.Run("rate limited after the window allowance", func() {
		s.SetupTest()
		for i := 0; i < 3; i++ {
			s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))
		}
		err := s.auth.SendCode(context.Background(), testPhone)
		s.Require().ErrorIs(err, errs.ErrRateLimited)

		// The window elapses and sends resume.
		s.clk.Advance(10*time.Minute + time.Second)
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))
	})

	s.Run("delivery failure keeps the code valid", func() {
		s.SetupTest()
		s.sender.fail = true
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))

		result, err := s.auth.VerifyCode(context.Background(), testPhone, s.sender.lastCode)
		s.Require().NoError(err)
		s.True(result.IsNewUser)
	})
}

func (s *AuthUseCaseSuite) TestVerifyCode() {
	s.Run("first verification creates the user", func() {
		s.SetupTest()
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))

		result, err := s.auth.VerifyCode(context.Background(), testPhone, s.sender.lastCode)
		s.Require().NoError(err)
		s.True(result.IsNewUser)
		s.Equal(testPhone, result.Phone)
		s.NotEmpty(result.Token)

		claims, err := s.jwtSvc.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(result.UserID, claims.UserID)

		u, ok := s.uow.User(result.UserID)
		s.Require().True(ok)
		s.Equal(testPhone, u.Phone)
	})

	s.Run("returning user is recognized", func() {
		s.SetupTest()
		seeded := builder.NewUserBuilder().WithPhone(testPhone).BuildSnapshot()
		s.uow.SeedUser(seeded)

		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))
		result, err := s.auth.VerifyCode(context.Background(), testPhone, s.sender.lastCode)
		s.Require().NoError(err)
		s.False(result.IsNewUser)
		s.Equal(seeded.ID, result.UserID)
	})

	s.Run("wrong code", func() {
		s.SetupTest()
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))

		_, err := s.auth.VerifyCode(context.Background(), testPhone, "000000")
		s.Require().ErrorIs(err, errs.ErrInvalidChallenge)
	})

	s.Run("code without a send", func() {
		s.SetupTest()
		_, err := s.auth.VerifyCode(context.Background(), testPhone, "123456")
		s.Require().ErrorIs(err, errs.ErrInvalidChallenge)
	})

	s.Run("expired code", func() {
		s.SetupTest()
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))
		code := s.sender.lastCode

		s.clk.Advance(5*time.Minute + time.Second)
		_, err := s.auth.VerifyCode(context.Background(), testPhone, code)
		s.Require().ErrorIs(err, errs.ErrInvalidChallenge)
	})

	s.Run("attempt ceiling surfaces its own error", func() {
		s.SetupTest()
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))
		code := s.sender.lastCode

		for i := 0; i < 3; i++ {
			_, err := s.auth.VerifyCode(context.Background(), testPhone, "000000")
			s.Require().ErrorIs(err, errs.ErrInvalidChallenge)
		}

		_, err := s.auth.VerifyCode(context.Background(), testPhone, code)
		s.Require().ErrorIs(err, errs.ErrChallengeAttemptsExceeded)
	})

	s.Run("used code is cleared", func() {
		s.SetupTest()
		s.Require().NoError(s.auth.SendCode(context.Background(), testPhone))
		code := s.sender.lastCode

		_, err := s.auth.VerifyCode(context.Background(), testPhone, code)
		s.Require().NoError(err)

		_, err = s.auth.VerifyCode(context.Background(), testPhone, code)
		s.Require().ErrorIs(err, errs.ErrInvalidChallenge)
	})
}

func (s *AuthUseCaseSuite) TestCompleteProfile() {
	s.Run("updates the profile", func() {
		s.SetupTest()
		seeded := builder.NewUserBuilder().WithPhone(testPhone).BuildSnapshot()
		s.uow.SeedUser(seeded)

		err := s.auth.CompleteProfile(context.Background(), seeded.ID, "Asha Rao", "asha.rao@example.com", "Mysuru", "VV Mohalla")
		s.Require().NoError(err)

		u, _ := s.uow.User(seeded.ID)
		s.Equal("Asha Rao", u.Name)
		s.Equal("asha.rao@example.com", u.Email)
		s.Equal("Mysuru", u.City)
		s.Equal("VV Mohalla", u.Area)
	})

	s.Run("unknown user", func() {
		s.SetupTest()
		err := s.auth.CompleteProfile(context.Background(), builder.NewUserBuilder().ID, "Asha", "asha@example.com", "Bengaluru", "Indiranagar")
		s.Require().ErrorIs(err, errs.ErrUserNotFound)
	})

	s.Run("invalid name", func() {
		s.SetupTest()
		seeded := builder.NewUserBuilder().WithPhone(testPhone).BuildSnapshot()
		s.uow.SeedUser(seeded)

		err := s.auth.CompleteProfile(context.Background(), seeded.ID, "   ", "asha@example.com", "Bengaluru", "Indiranagar")
		s.Require().ErrorIs(err, domuser.ErrEmptyName)
	})
}
