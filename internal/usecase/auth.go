package usecase

import (
	"context"
	"errors"
	"log/slog"

	domuser "eatyaar/internal/domain/user"
	"eatyaar/internal/infra"
	"eatyaar/internal/pkg/challenge"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/pkg/jwt"
	"eatyaar/internal/pkg/ratelimit"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenGeneration = errors.New("token generation failed")
	ErrTokenValidation = errors.New("token validation failed")
)

// CodeSender is the outbound delivery channel for verification codes. Delivery
// failure does not invalidate the issued code; the client may retry delivery
// while the code is still live.
type CodeSender interface {
	Send(ctx context.Context, phone, code string) error
}

type AuthResult struct {
	Token     string
	UserID    uuid.UUID
	Phone     string
	IsNewUser bool
}

type AuthUseCase interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (*AuthResult, error)
	CompleteProfile(ctx context.Context, userID uuid.UUID, name, email, city, area string) error
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	challenges *challenge.Store
	limiter    *ratelimit.Limiter
	sender     CodeSender
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(
	uow shared.UnitOfWork,
	challenges *challenge.Store,
	limiter *ratelimit.Limiter,
	sender CodeSender,
	jwtService *jwt.Service,
	clk clock.Clock,
) AuthUseCase {
	return &authUseCaseImpl{
		uow:        uow,
		challenges: challenges,
		limiter:    limiter,
		sender:     sender,
		jwtService: jwtService,
		clock:      clk,
	}
}

// SendCode issues a fresh verification code for the phone and hands it to the
// delivery channel. The rate limiter runs before issuance so a flood of
// requests is refused without invalidating a legitimate in-flight code.
func (a *authUseCaseImpl) SendCode(ctx context.Context, phone string) error {
	phoneVO, err := domuser.NewPhone(phone)
	if err != nil {
		return err
	}
	key := phoneVO.Value()

	if err := a.limiter.CheckAndRecord(key); err != nil {
		return errs.Mark(err, errs.ErrRateLimited)
	}

	code, err := a.challenges.Issue(key)
	if err != nil {
		return errs.Wrap(err, "failed to issue verification code")
	}

	if err := a.sender.Send(ctx, key, code); err != nil {
		// Accepted trade-off: the issued code stays valid even when delivery
		// fails, so the client can request redelivery without a fresh code.
		slog.Warn("verification code delivery failed",
			"key", challenge.Mask(key), "error", err.Error())
	}
	return nil
}

// VerifyCode checks the candidate code and resolves the phone to a durable
// user, creating one on first success.
func (a *authUseCaseImpl) VerifyCode(ctx context.Context, phone, code string) (*AuthResult, error) {
	phoneVO, err := domuser.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	key := phoneVO.Value()

	ok, err := a.challenges.Verify(key, code)
	if err != nil {
		if errors.Is(err, challenge.ErrTooManyAttempts) {
			return nil, errs.Mark(err, errs.ErrChallengeAttemptsExceeded)
		}
		return nil, err
	}
	if !ok {
		return nil, errs.ErrInvalidChallenge
	}

	a.challenges.Clear(key)

	var result AuthResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByPhone(ctx, key)
		switch {
		case derr == nil:
			result.UserID = snap.ID
			result.Phone = snap.Phone
			return nil
		case infra.IsKind(derr, infra.KindNotFound):
			u := domuser.NewUser(phoneVO, a.clock.Now())
			id, cerr := tx.Users().Create(ctx, tx.DB(), u)
			if cerr != nil {
				return cerr
			}
			result.UserID = id
			result.Phone = key
			result.IsNewUser = true
			slog.Info("new user registered", "key", challenge.Mask(key))
			return nil
		default:
			return derr
		}
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(result.UserID, result.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	result.Token = token
	return &result, nil
}

func (a *authUseCaseImpl) CompleteProfile(ctx context.Context, userID uuid.UUID, name, email, city, area string) error {
	nameVO, err := domuser.NewName(name)
	if err != nil {
		return err
	}
	emailVO, err := domuser.NewEmail(email)
	if err != nil {
		return err
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrUserNotFound)
			}
			return derr
		}

		phoneVO, perr := domuser.NewPhone(snap.Phone)
		if perr != nil {
			return perr
		}
		u := domuser.Reconstruct(
			snap.ID, phoneVO,
			snap.Name, snap.Email, snap.City, snap.Area,
			snap.TrustScore, snap.TotalGiven, snap.TotalTaken,
			snap.IsVerified, snap.CreatedAt,
		)
		u.CompleteProfile(nameVO, emailVO, city, area)

		return tx.Users().CompleteProfile(ctx, tx.DB(), u.ID(), u.Name(), u.Email(), u.City(), u.Area())
	})
}
