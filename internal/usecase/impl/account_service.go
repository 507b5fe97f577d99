// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "notes/internal/delivery/context"
	"notes/internal/domain/entity"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/domain/repository"
	"notes/internal/domain/service"
	"notes/internal/errors"
	"notes/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// dummyPassword is hashed once at construction. Logins for an unknown email are
// compared against that hash so they cost the same as a wrong password.
const dummyPassword = "notes-dummy-password"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	dummyHash    string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
// It hashes the dummy password with the configured hasher, so startup fails if hashing does.
func NewAccountService(params AccountServiceParams) (usecase.AccountUsecase, error) {
	dummyHash, err := params.Hasher.Hash(context.Background(), dummyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy password hash")
	}

	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		dummyHash:    dummyHash,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account whose email is not yet taken and issues its first token.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction so a caller queued for a hash slot holds no connection.
	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(srv.hashFailure(ctx, err), "failed to register account")
	}

	var created *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		switch {
		case err == nil:
			return domainerrors.ErrDuplicateAccount.WrapMessage("email already registered")
		case !errors.Is(err, repository.ErrAccountNotFound):
			return errors.Wrap(err, "failed to look up account by email")
		}

		account := &entity.Account{
			FullName:     input.FullName,
			Email:        input.Email,
			PasswordHash: hash,
		}
		// A concurrent registration of the same email surfaces here as ErrDuplicateAccount.
		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}
		created = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	token, err := srv.tokenService.IssueToken(created)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("accountID", created.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", created.ID))

	return &usecase.RegisterOutput{Account: created, Token: token}, nil
}

func (srv *accountService) hashFailure(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(ctxErr, "password hashing aborted")
	}

	srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

	return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
}

// Login verifies the email and password pair and issues a session token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Error("Login lookup failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to load account for login")
		}

		if _, checkErr := srv.hasher.Check(ctx, input.Password, srv.dummyHash); checkErr != nil {
			return nil, srv.hashFailure(ctx, checkErr)
		}
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "account not found"))

		return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
	}

	ok, err := srv.hasher.Check(ctx, input.Password, account.PasswordHash)
	if err != nil {
		return nil, srv.hashFailure(ctx, err)
	}
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.IssueToken(account)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Account logged in", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: account, Token: token}, nil
}

// GetProfile re-reads the account behind a validated token.
func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load account profile")
	}

	return account, nil
}
