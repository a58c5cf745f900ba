package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/model"
	"leagueportal/internal/repository"
)

// DateOfBirthLayout is the accepted dateOfBirth format.
const DateOfBirthLayout = "2006-01-02"

// RegisterPlayerInput is the registration form submitted by a user.
type RegisterPlayerInput struct {
	PlayerPhoto          string   `validate:"required"`
	PlayerName           string   `validate:"required"`
	ContactNumber        string   `validate:"required"`
	DateOfBirth          string   `validate:"required"`
	AadharNumber         string   `validate:"required"`
	Village              string   `validate:"required"`
	PostOffice           string   `validate:"required"`
	PoliceStation        string   `validate:"required"`
	City                 string   `validate:"required"`
	GPSelection          string   `validate:"required"`
	ParentName           string   `validate:"required"`
	ParentContact        string   `validate:"required"`
	EmergencyContactName string   `validate:"required"`
	EmergencyPhone       string   `validate:"required"`
	BowlingStyle         []string `validate:"dive,required"`
	BattingStyle         []string `validate:"dive,required"`
	PrimaryRole          string   `validate:"required,oneof='Batsman' 'Bowler' 'All Rounder' 'Wicket Keeper'"`
}

// PlayerService handles player registration.
type PlayerService interface {
	Register(ctx context.Context, userID uuid.UUID, in RegisterPlayerInput) (*model.Player, error)
	// GetForUser returns nil without error when the user has not registered.
	GetForUser(ctx context.Context, userID uuid.UUID) (*model.Player, error)
}

type playerService struct {
	players  repository.PlayerRepository
	validate *validator.Validate
	log      *slog.Logger
}

// NewPlayerService creates a new player service.
func NewPlayerService(players repository.PlayerRepository, log *slog.Logger) PlayerService {
	v := validator.New()
	v.RegisterStructValidation(roleStyleRule, RegisterPlayerInput{})
	return &playerService{
		players:  players,
		validate: v,
		log:      log,
	}
}

// roleStyleRule requires a bowling style for bowlers and all rounders and a
// batting style for batsmen and all rounders.
func roleStyleRule(sl validator.StructLevel) {
	in := sl.Current().Interface().(RegisterPlayerInput)
	switch in.PrimaryRole {
	case model.RoleAllRounder:
		if len(in.BowlingStyle) == 0 {
			sl.ReportError(in.BowlingStyle, "BowlingStyle", "bowlingStyle", "required_for_role", in.PrimaryRole)
		}
		if len(in.BattingStyle) == 0 {
			sl.ReportError(in.BattingStyle, "BattingStyle", "battingStyle", "required_for_role", in.PrimaryRole)
		}
	case model.RoleBowler:
		if len(in.BowlingStyle) == 0 {
			sl.ReportError(in.BowlingStyle, "BowlingStyle", "bowlingStyle", "required_for_role", in.PrimaryRole)
		}
	case model.RoleBatsman:
		if len(in.BattingStyle) == 0 {
			sl.ReportError(in.BattingStyle, "BattingStyle", "battingStyle", "required_for_role", in.PrimaryRole)
		}
	}
}

// Register creates the user's player profile with payment status pending.
func (s *playerService) Register(ctx context.Context, userID uuid.UUID, in RegisterPlayerInput) (*model.Player, error) {
	const op = "service.playerService.Register"
	log := s.log.With(slog.String("op", op), slog.String("user_id", userID.String()))

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, describeValidation(err))
	}
	dob, err := time.Parse(DateOfBirthLayout, in.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	_, err = s.players.FindByUserID(ctx, userID)
	if err == nil {
		return nil, apperrors.ErrPlayerAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: check player: %w", op, err)
	}

	player := &model.Player{
		ID:                   uuid.New(),
		UserID:               userID,
		PlayerPhoto:          in.PlayerPhoto,
		PlayerName:           strings.TrimSpace(in.PlayerName),
		ContactNumber:        in.ContactNumber,
		DateOfBirth:          dob,
		AadharNumber:         in.AadharNumber,
		Village:              in.Village,
		PostOffice:           in.PostOffice,
		PoliceStation:        in.PoliceStation,
		City:                 in.City,
		GPSelection:          in.GPSelection,
		ParentName:           in.ParentName,
		ParentContact:        in.ParentContact,
		EmergencyContactName: in.EmergencyContactName,
		EmergencyPhone:       in.EmergencyPhone,
		BowlingStyle:         nonNil(in.BowlingStyle),
		BattingStyle:         nonNil(in.BattingStyle),
		PrimaryRole:          in.PrimaryRole,
		RegistrationDate:     time.Now(),
		PaymentStatus:        model.PaymentStatusPending,
	}

	if err := s.players.Create(ctx, player); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPlayerAlreadyRegistered
		}
		return nil, fmt.Errorf("%s: create player: %w", op, err)
	}

	log.Info("player registered", slog.String("player_id", player.ID.String()))
	return player, nil
}

func (s *playerService) GetForUser(ctx context.Context, userID uuid.UUID) (*model.Player, error) {
	player, err := s.players.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find player: %w", err)
	}
	return player, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required_for_role":
			msgs = append(msgs, fmt.Sprintf("%s is required for %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
