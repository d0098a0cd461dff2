package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
	"github.com/hiyoko/dailystamp/internal/repository"
	"github.com/hiyoko/dailystamp/pkg/entity"
)

type ProfileService struct {
	repo repository.ProfilesRepositoryI
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI) *ProfileService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfileService{
		repo: profilesRepo,
	}
}

func (ps *ProfileService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	profile, err := ps.repo.GetByUserID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, errorvalues.ErrProfileNotFound) {
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	profile, err = ps.repo.Create(ctx, uid)
	if err != nil {
		return nil, errors.New("lazy profile creation error: " + err.Error())
	}
	return profile, nil
}

func (ps *ProfileService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.Profile, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	profile, err := ps.repo.UpdateCharacterName(ctx, uid, req.CharacterName)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return profile, nil
}
