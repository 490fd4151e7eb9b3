// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/domain/service"
	"learnhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	dummyHash    string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthService service.OAuthService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	// A fixed throwaway hash keeps the unknown-email path doing the same
	// bcrypt work as the wrong-password path, so login timing does not
	// reveal whether an email is registered.
	dummyHash, err := params.Hasher.UnusablePassword()
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy credential hash")
	}

	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		dummyHash:    dummyHash,
		logger:       params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account from explicit registration input.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if input.Name == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("all fields are required")
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("passwords do not match")
	}

	if _, err := srv.accountRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("Registration for existing email", slog.String("email", input.Email))

		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newAccount := &entity.Account{
		FullName:     input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleMember,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		// A concurrent registration may win between the lookup and the
		// create; the unique index reports it as a duplicate.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.RegisterOutput{Account: newAccount}, nil
}

// Login verifies a claimed email/password pair and issues a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Burn the same bcrypt cost as a real comparison, then fail
			// with the same error kind as a password mismatch.
			srv.hasher.Check(input.Password, srv.dummyHash)
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Generate(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.SessionOutput{Token: token, Account: account}, nil
}

// GoogleAuthURL starts the federated flow.
func (srv *authService) GoogleAuthURL() (string, string) {
	return srv.oauthService.BuildAuthorizationURL()
}

// GoogleCallback completes the federated flow: state validation, identity
// resolution, first-login provisioning, session issuance.
func (srv *authService) GoogleCallback(ctx context.Context, state, code string) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Handling Google callback")

	if !srv.oauthService.ValidateState(state) {
		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "state validation failed")
	}

	oauthUser, err := srv.oauthService.ResolveUser(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve Google identity", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("failed to resolve Google identity")
	}

	account, err := srv.findOrCreateFederatedAccount(ctx, oauthUser)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Generate(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.SessionOutput{Token: token, Account: account}, nil
}

// findOrCreateFederatedAccount is the identity provisioner: an existing
// account is used as-is, a first-seen identity gets a fresh account with an
// unusable credential. Lookup-then-create is not atomic; when two first
// logins race, the store's unique email index rejects the loser, which then
// proceeds with the account the winner created.
func (srv *authService) findOrCreateFederatedAccount(ctx context.Context, oauthUser *service.OAuthUser) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, oauthUser.Email)
	if err == nil {
		srv.log(ctx).Debug("Found existing account for federated login", slog.Any("accountID", account.ID))

		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to look up account for federated login")
	}

	srv.log(ctx).Info("Federated identity not found, provisioning account", slog.String("email", oauthUser.Email))

	placeholderHash, err := srv.hasher.UnusablePassword()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate placeholder credential")
	}

	newAccount := &entity.Account{
		FullName:      oauthUser.Name,
		Email:         oauthUser.Email,
		PasswordHash:  placeholderHash,
		Role:          entity.RoleMember,
		FederatedOnly: true,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Info("Lost provisioning race, using existing account", slog.String("email", oauthUser.Email))

			existing, findErr := srv.accountRepo.FindByEmail(ctx, oauthUser.Email)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load account after provisioning race")
			}

			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to provision federated account")
	}

	return newAccount, nil
}
