package auth

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/repository"
)

// Config parámetros del flujo de autenticación externa.
type Config struct {
	ProviderLoginURL string // página de login hospedada
	FrontendURL      string // destino del redirect tras autenticarse
	SessionTTLDays   int    // vigencia de la sesión
}

// AuthUseCase casos de uso de autenticación: URL de login, intercambio de
// sesión, logout y resolución de usuario por token.
//
// El protocolo del proveedor queda detrás de SessionExchanger; aquí solo se
// persiste el resultado (upsert de usuario por email, upsert de sesión).
type AuthUseCase struct {
	exchanger   SessionExchanger
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         Config
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(exchanger SessionExchanger, userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg Config) *AuthUseCase {
	if cfg.SessionTTLDays <= 0 {
		cfg.SessionTTLDays = 7
	}
	return &AuthUseCase{
		exchanger:   exchanger,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

// SessionTTL vigencia configurada de la sesión (también usada para el cookie).
func (uc *AuthUseCase) SessionTTL() time.Duration {
	return time.Duration(uc.cfg.SessionTTLDays) * 24 * time.Hour
}

// LoginURL devuelve la URL del proveedor hospedado con el redirect al frontend.
func (uc *AuthUseCase) LoginURL() string {
	return uc.cfg.ProviderLoginURL + "?redirect=" + url.QueryEscape(uc.cfg.FrontendURL)
}

// Exchange canjea el session ID de un solo uso por un perfil del proveedor,
// hace upsert del usuario (por email; los nuevos entran con rol "user") y
// persiste la sesión de larga vida. Devuelve usuario + token.
func (uc *AuthUseCase) Exchange(ctx context.Context, sessionID string) (*dto.ExchangeResponse, error) {
	if sessionID == "" {
		return nil, domain.ErrValidation
	}
	profile, err := uc.exchanger.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &entity.User{
			ID:        uuid.New().String(),
			Email:     profile.Email,
			Name:      profile.Name,
			Picture:   profile.Picture,
			Role:      entity.RoleUser,
			CreatedAt: uc.now(),
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	session := &entity.Session{
		Token:     profile.SessionToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.SessionTTL()),
		CreatedAt: now,
	}
	if err := uc.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, err
	}

	return &dto.ExchangeResponse{
		User:         *ToUserResponse(user),
		SessionToken: session.Token,
	}, nil
}

// Resolve valida un token de sesión y devuelve el usuario asociado.
// Las sesiones vencidas se eliminan en el mismo lookup (limpieza perezosa).
// Devuelve domain.ErrUnauthenticated si el token no existe, venció o el
// usuario ya no está.
func (uc *AuthUseCase) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	session, err := uc.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}
	if session.Expired(uc.now()) {
		_ = uc.sessionRepo.Delete(ctx, token)
		return nil, domain.ErrUnauthenticated
	}
	user, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// Logout destruye la sesión. Token vacío o inexistente no es error: el
// logout es idempotente.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessionRepo.Delete(ctx, token)
}

// SeedAdmin crea el usuario admin por defecto si no existe (arranque).
func (uc *AuthUseCase) SeedAdmin(ctx context.Context, email, name string) error {
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	admin := &entity.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      entity.RoleAdmin,
		CreatedAt: uc.now(),
	}
	return uc.userRepo.Create(ctx, admin)
}

// ToUserResponse convierte la entidad al DTO público.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
