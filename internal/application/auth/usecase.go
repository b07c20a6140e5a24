package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agency-ops-api/internal/application/dto"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
	"github.com/jhoicas/agency-ops-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. Actúa como el
// resolutor de identidad/rol del portal; el resto del core confía en el rol y
// el partner_id que este token resuelve.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	partnerRepo repository.PartnerRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, partnerRepo repository.PartnerRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, partnerRepo: partnerRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Si el rol es partner, el PartnerID debe apuntar a un partner existente.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = entity.RoleClient
	}
	switch role {
	case entity.RoleAdmin, entity.RolePartner, entity.RoleClient:
	default:
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RolePartner {
		partner, err := uc.partnerRepo.GetByID(in.PartnerID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			return nil, domain.ErrNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		PartnerID:    in.PartnerID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.PartnerID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		PartnerID: u.PartnerID,
	}
}
