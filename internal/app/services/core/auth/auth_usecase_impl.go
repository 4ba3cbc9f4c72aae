package auth

import (
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/models"
	"anubha-web/internal/app/services/shared/gateway"
	"anubha-web/internal/pkg/backend_dto"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/dto/requests"
	"anubha-web/internal/pkg/dto/responses"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type authUsecase struct {
	AuthBackend   contracts.AuthBackend
	ClientStorage contracts.ClientStorage
	Log           *zap.Logger
	hydrations    singleflight.Group
}

// Keys dropped on logout, whether or not the backend call succeeded.
var logoutStorageKeys = []string{
	constvars.StorageKeyUser,
	constvars.StorageKeyLoginOTPExpiry,
	constvars.StorageKeyBookingForm,
	constvars.StorageKeyLoginFlow,
	constvars.StorageKeyRegisterFlow,
	constvars.StorageKeyRegisterOTPExpiry,
}

func NewAuthUsecase(
	authBackend contracts.AuthBackend,
	clientStorage contracts.ClientStorage,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthBackend:   authBackend,
		ClientStorage: clientStorage,
		Log:           logger,
	}
}

// Hydrate asks the backend who the visitor is. Concurrent calls for one session share a single request.
func (uc *authUsecase) Hydrate(ctx context.Context) (*responses.AuthState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Hydrate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return nil, err
	}

	result, err, shared := uc.hydrations.Do(sessionID, func() (interface{}, error) {
		// joined callers must not inherit the first caller's cancellation
		return uc.hydrate(context.WithoutCancel(ctx), sessionID)
	})
	if err != nil {
		uc.Log.Error("authUsecase.Hydrate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	state := *result.(*responses.AuthState)
	uc.Log.Info("authUsecase.Hydrate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("logged_in", state.User != nil),
		zap.Bool("stale", state.Stale),
		zap.Bool("shared", shared),
	)
	return &state, nil
}

func (uc *authUsecase) hydrate(ctx context.Context, sessionID string) (*responses.AuthState, error) {
	response, err := uc.AuthBackend.Me(ctx)
	if err == nil {
		user := response.Account()
		if response.Success && user != nil {
			err = uc.ClientStorage.Set(ctx, sessionID, constvars.StorageKeyUser, user)
			if err != nil {
				return nil, err
			}
			return &responses.AuthState{User: user}, nil
		}
		return uc.clear(ctx, sessionID)
	}

	status := gateway.StatusOf(err)
	switch {
	case status == constvars.StatusUnauthorized, status == constvars.StatusBadRequest:
		return uc.clear(ctx, sessionID)
	case status == 0, status >= constvars.StatusInternalServerError:
		cached, cacheErr := uc.cachedUser(ctx, sessionID)
		if cacheErr != nil {
			return nil, cacheErr
		}
		uc.Log.Warn("authUsecase.hydrate backend unavailable, using cached user",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Int(constvars.LoggingStatusCodeKey, status),
			zap.Error(err),
		)
		return &responses.AuthState{User: cached, Stale: cached != nil}, nil
	default:
		cached, cacheErr := uc.cachedUser(ctx, sessionID)
		if cacheErr != nil {
			return nil, cacheErr
		}
		if cached == nil {
			return uc.clear(ctx, sessionID)
		}
		return &responses.AuthState{User: cached}, nil
	}
}

func (uc *authUsecase) clear(ctx context.Context, sessionID string) (*responses.AuthState, error) {
	err := uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyUser)
	if err != nil {
		return nil, err
	}
	return &responses.AuthState{}, nil
}

func (uc *authUsecase) cachedUser(ctx context.Context, sessionID string) (*backend_dto.User, error) {
	user := &backend_dto.User{}
	found, err := uc.ClientStorage.Get(ctx, sessionID, constvars.StorageKeyUser, user)
	if err != nil {
		return nil, err
	}
	if !found || user.ID == "" {
		return nil, nil
	}
	return user, nil
}

// CurrentUser reads the cached user without calling the backend.
func (uc *authUsecase) CurrentUser(ctx context.Context) (*backend_dto.User, error) {
	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := uc.cachedUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNotLoggedIn(nil)
	}
	return user, nil
}

func (uc *authUsecase) Login(ctx context.Context, user *backend_dto.User) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return err
	}

	err = uc.ClientStorage.Set(ctx, sessionID, constvars.StorageKeyUser, user)
	if err != nil {
		uc.Log.Error("authUsecase.Login error caching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", user.Role),
	)
	return nil
}

func (uc *authUsecase) Logout(ctx context.Context) (*responses.AuthState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := utils.SessionID(ctx)
	if err != nil {
		return nil, err
	}

	err = uc.AuthBackend.Logout(ctx)
	if err != nil {
		uc.Log.Warn("authUsecase.Logout backend logout failed, clearing local state anyway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if session, ok := models.SessionFromContext(ctx); ok {
		session.ClearBackendCookies()
	}

	err = uc.ClientStorage.Remove(ctx, sessionID, logoutStorageKeys...)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error clearing client storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.AuthState{LoggingOut: true, RedirectTo: "/"}, nil
}

// HandleUnauthorized receives the gateway's logout signal.
func (uc *authUsecase) HandleUnauthorized(ctx context.Context) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := models.SessionIDFromContext(ctx)
	if sessionID == "" {
		return
	}

	err := uc.ClientStorage.Remove(ctx, sessionID, constvars.StorageKeyUser)
	if err != nil {
		uc.Log.Error("authUsecase.HandleUnauthorized error clearing cached user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	uc.Log.Info("authUsecase.HandleUnauthorized cleared cached user",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}

func (uc *authUsecase) PasswordLogin(ctx context.Context, request *requests.PasswordLogin) (*responses.AuthState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.PasswordLogin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identifier := strings.TrimSpace(request.Identifier)
	fields := make(map[string]string)
	if identifier == "" {
		fields["identifier"] = constvars.ErrClientEmailRequired
	}
	if request.Password == "" {
		fields["password"] = constvars.ErrClientPasswordRequired
	}
	if len(fields) > 0 {
		return nil, exceptions.ErrFieldValidation(fields)
	}

	response, err := uc.AuthBackend.Login(ctx, &backend_dto.PasswordLoginRequest{
		Identifier: identifier,
		Password:   request.Password,
	})
	if err != nil {
		if gateway.StatusOf(err) == constvars.StatusNotFound {
			return nil, utils.AttachField(err, "identifier")
		}
		return nil, utils.AttachField(err, "password")
	}

	user := response.Account()
	if !response.Success || user == nil {
		return nil, exceptions.ErrFieldValidation(map[string]string{
			"password": exceptions.FriendlyMessage(response.Message),
		})
	}

	err = uc.Login(ctx, user)
	if err != nil {
		return nil, err
	}
	return &responses.AuthState{User: user, RedirectTo: user.HomePath()}, nil
}

// Signup creates the account and logs in with the same credentials.
func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.AuthState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	name := strings.TrimSpace(request.Name)
	email := strings.TrimSpace(request.Email)
	fields := make(map[string]string)
	if name == "" {
		fields["name"] = constvars.ErrClientNameRequired
	}
	switch {
	case email == "":
		fields["email"] = constvars.ErrClientEmailRequired
	case !utils.IsValidEmail(email):
		fields["email"] = constvars.ErrClientEmailInvalid
	}
	if request.Password == "" {
		fields["password"] = constvars.ErrClientPasswordRequired
	}
	if request.Password != request.ConfirmPassword {
		fields["confirmPassword"] = constvars.ErrClientPasswordsDoNotMatch
	}
	if len(fields) > 0 {
		return nil, exceptions.ErrFieldValidation(fields)
	}

	_, err := uc.AuthBackend.Signup(ctx, &backend_dto.SignupRequest{
		Name:     name,
		Phone:    nil,
		Email:    email,
		Password: request.Password,
	})
	if err != nil {
		return nil, err
	}

	response, err := uc.AuthBackend.Login(ctx, &backend_dto.PasswordLoginRequest{
		Identifier: email,
		Password:   request.Password,
	})
	if err != nil || !response.Success || response.Account() == nil {
		uc.Log.Warn("authUsecase.Signup auto login failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.AuthState{RedirectTo: "/login", Notice: constvars.ErrClientAutoLoginFailed}, nil
	}

	user := response.Account()
	err = uc.Login(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.AuthState{User: user, RedirectTo: user.HomePath()}, nil
}

// ForgotPassword answers with the same confirmation whether or not the account exists.
func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.TrimSpace(request.Email)
	err := validateEmail(email)
	if err != nil {
		return "", err
	}

	_, err = uc.AuthBackend.ForgotPassword(ctx, &backend_dto.ForgotPasswordRequest{Email: email})
	if err != nil {
		if gateway.StatusOf(err) == constvars.StatusBadRequest {
			return "", utils.AttachField(err, "email")
		}
		uc.Log.Warn("authUsecase.ForgotPassword backend error hidden from visitor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return constvars.ForgotPasswordSuccessMessage, nil
}

func (uc *authUsecase) SendAddEmailOTP(ctx context.Context, request *requests.SendEmailOTP) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SendAddEmailOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.TrimSpace(request.Email)
	err := validateEmail(email)
	if err != nil {
		return "", err
	}

	response, err := uc.AuthBackend.SendAddEmailOTP(ctx, &backend_dto.EmailOTPRequest{Email: email})
	if err != nil {
		return "", utils.AttachField(err, "email")
	}
	if response.Message != "" {
		return response.Message, nil
	}
	return constvars.OTPSentSuccessMessage, nil
}

func (uc *authUsecase) VerifyAddEmailOTP(ctx context.Context, request *requests.VerifyEmailOTP) (*responses.AuthState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyAddEmailOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.TrimSpace(request.Email)
	err := validateEmail(email)
	if err != nil {
		return nil, err
	}
	otp, err := ValidateOTP(request.OTP)
	if err != nil {
		return nil, err
	}

	response, err := uc.AuthBackend.VerifyAddEmailOTP(ctx, &backend_dto.EmailOTPRequest{Email: email, OTP: otp})
	if err != nil {
		return nil, utils.AttachField(err, "otp")
	}

	user := response.Account()
	if !response.Success || user == nil {
		return nil, exceptions.ErrFieldValidation(map[string]string{
			"otp": exceptions.FriendlyMessage(response.Message),
		})
	}

	err = uc.Login(ctx, user)
	if err != nil {
		return nil, err
	}
	return &responses.AuthState{User: user}, nil
}

func validateEmail(email string) error {
	if email == "" {
		return exceptions.ErrFieldValidation(map[string]string{"email": constvars.ErrClientEmailRequired})
	}
	if !utils.IsValidEmail(email) {
		return exceptions.ErrFieldValidation(map[string]string{"email": constvars.ErrClientEmailInvalid})
	}
	return nil
}

// ValidateOTP trims the code and requires exactly four digits.
func ValidateOTP(otp string) (string, error) {
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return "", exceptions.ErrFieldValidation(map[string]string{"otp": constvars.ErrClientOTPRequired})
	}
	if !utils.IsValidOTP(otp) {
		return "", exceptions.ErrFieldValidation(map[string]string{"otp": constvars.ErrClientOTPFourDigits})
	}
	return otp, nil
}

// ValidatePhone trims the number and requires exactly ten digits.
func ValidatePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", exceptions.ErrFieldValidation(map[string]string{"phone": constvars.ErrClientPhoneRequired})
	}
	if !utils.IsValidMobile(phone) {
		return "", exceptions.ErrFieldValidation(map[string]string{"phone": constvars.ErrClientMobileInvalid})
	}
	return phone, nil
}
