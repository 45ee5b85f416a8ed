// Package seed loads a small demo dataset on startup so a fresh instance is
// usable right away.
package seed

import (
	"context"
	"log/slog"
	"time"

	"formationpro/internal/model"
	"formationpro/internal/repository"
	"formationpro/internal/service"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminEmail    = "admin@formationpro.com"
	adminPassword = "admin123"
)

type Dependencies struct {
	UserRepo       repository.UserRepository
	SpecialtyRepo  repository.SpecialtyRepository
	TrainerRepo    repository.TrainerRepository
	TrainingRepo   repository.TrainingRepository
	SessionService service.SessionService
}

// Load inserts the demo admin account, a couple of specialties and trainers,
// one training and one session with an audited status change. It is meant to
// run once against empty repositories.
func Load(ctx context.Context, deps Dependencies) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.New(),
		Email:        AdminEmail,
		PasswordHash: string(hashedPassword),
		Name:         "Admin FormationPro",
		Role:         model.RoleAdmin,
		Status:       model.UserActive,
	}
	if err := deps.UserRepo.Insert(ctx, admin); err != nil {
		return err
	}

	now := time.Now()

	webGroup := &model.SpecialtyGroup{ID: uuid.New(), Name: "Développement Web", CreatedAt: now, UpdatedAt: now}
	dataGroup := &model.SpecialtyGroup{ID: uuid.New(), Name: "Data Science", CreatedAt: now, UpdatedAt: now}
	if err := deps.SpecialtyRepo.InsertGroup(ctx, webGroup); err != nil {
		return err
	}
	if err := deps.SpecialtyRepo.InsertGroup(ctx, dataGroup); err != nil {
		return err
	}

	react := &model.Specialty{ID: uuid.New(), Name: "React.js", GroupID: webGroup.ID, CreatedAt: now, UpdatedAt: now}
	node := &model.Specialty{ID: uuid.New(), Name: "Node.js", GroupID: webGroup.ID, CreatedAt: now, UpdatedAt: now}
	python := &model.Specialty{ID: uuid.New(), Name: "Python", GroupID: dataGroup.ID, CreatedAt: now, UpdatedAt: now}
	for _, specialty := range []*model.Specialty{react, node, python} {
		if err := deps.SpecialtyRepo.InsertSpecialty(ctx, specialty); err != nil {
			return err
		}
	}

	marie := &model.Trainer{
		ID:          uuid.New(),
		FirstName:   "Marie",
		LastName:    "Dubois",
		Email:       "marie.dubois@formationpro.com",
		Specialties: []uuid.UUID{react.ID, node.ID},
		Bio:         "Développeuse front-end, 10 ans d'expérience sur l'écosystème JavaScript.",
		Status:      model.TrainerActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	thomas := &model.Trainer{
		ID:          uuid.New(),
		FirstName:   "Thomas",
		LastName:    "Martin",
		Email:       "thomas.martin@formationpro.com",
		Specialties: []uuid.UUID{python.ID},
		Bio:         "Data scientist et formateur Python.",
		Status:      model.TrainerActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := deps.TrainerRepo.Insert(ctx, marie); err != nil {
		return err
	}
	if err := deps.TrainerRepo.Insert(ctx, thomas); err != nil {
		return err
	}

	training := &model.Training{
		ID:                  uuid.New(),
		Title:               "React.js Avancé",
		Description:         "Hooks, performance et architecture de composants.",
		Duration:            3,
		Price:               1800,
		Category:            "Développement Web",
		Level:               model.LevelAdvanced,
		Objectives:          []string{"Maîtriser les hooks", "Optimiser le rendu"},
		RequiredSpecialties: []uuid.UUID{react.ID},
		Status:              model.TrainingActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := deps.TrainingRepo.Insert(ctx, training); err != nil {
		return err
	}

	actor := model.Actor{ID: admin.ID, Name: admin.Name}
	session, err := deps.SessionService.CreateSession(ctx, service.CreateSessionInput{
		TrainingID:      training.ID,
		StartDate:       now.AddDate(0, 1, 0),
		EndDate:         now.AddDate(0, 1, 3),
		Location:        "Paris",
		TrainerID:       marie.ID,
		MaxParticipants: 12,
		Status:          model.SessionScheduled,
	}, actor)
	if err != nil {
		return err
	}

	confirmed := model.SessionConfirmed
	comment := "Quorum atteint"
	if _, err := deps.SessionService.UpdateSession(ctx, session.ID, service.SessionPatch{Status: &confirmed}, &comment, &actor); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Demo data loaded", slog.String("admin_email", AdminEmail))
	return nil
}
