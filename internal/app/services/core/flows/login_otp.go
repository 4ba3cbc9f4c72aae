package flows

import "strings"

const (
	LoginEnterPhone             State = "ENTER_PHONE"
	LoginVerifyOTP              State = "VERIFY_OTP"
	LoginPhoneVerifiedNoAccount State = "PHONE_VERIFIED_NO_ACCOUNT"
	LoginLinkExistingAccount    State = "LINK_EXISTING_ACCOUNT"
	LoginLoggedIn               State = "LOGGED_IN"
)

const (
	EventOTPSent         Event = "OTP_SENT"
	EventOTPVerified     Event = "OTP_VERIFIED"
	EventNoAccountFound  Event = "NO_ACCOUNT_FOUND"
	EventChangeNumber    Event = "CHANGE_NUMBER"
	EventLinkExisting    Event = "LINK_EXISTING"
	EventBack            Event = "BACK"
	EventEmailOTPSent    Event = "EMAIL_OTP_SENT"
	EventAccountLinked   Event = "ACCOUNT_LINKED"
	EventChangeDetails   Event = "CHANGE_DETAILS"
	EventRegistered      Event = "REGISTERED"
	EventAdvanceProgress Event = "ADVANCE_PROGRESS"
)

var loginTransitions = transitions{
	LoginEnterPhone: {
		EventOTPSent: LoginVerifyOTP,
	},
	LoginVerifyOTP: {
		EventOTPSent:        LoginVerifyOTP,
		EventOTPVerified:    LoginLoggedIn,
		EventNoAccountFound: LoginPhoneVerifiedNoAccount,
		EventChangeNumber:   LoginEnterPhone,
	},
	LoginPhoneVerifiedNoAccount: {
		EventLinkExisting: LoginLinkExistingAccount,
	},
	LoginLinkExistingAccount: {
		EventEmailOTPSent:  LoginLinkExistingAccount,
		EventAccountLinked: LoginLoggedIn,
		EventBack:          LoginPhoneVerifiedNoAccount,
	},
}

// LoginFlow is the phone OTP login, persisted per visitor under flow_login_otp.
type LoginFlow struct {
	State        State  `json:"state"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	EmailOTPSent bool   `json:"emailOtpSent,omitempty"`
}

func NewLoginFlow() *LoginFlow {
	return &LoginFlow{State: LoginEnterPhone}
}

func (f *LoginFlow) fire(event Event) error {
	next, err := loginTransitions.next(f.State, event)
	if err != nil {
		return err
	}
	f.State = next
	return nil
}

func (f *LoginFlow) OTPSent(phone string) error {
	if f.State == LoginVerifyOTP && phone != f.Phone {
		return loginTransitions.illegal(f.State, EventOTPSent)
	}
	err := f.fire(EventOTPSent)
	if err != nil {
		return err
	}
	f.Phone = phone
	return nil
}

// OTPVerified moves to LOGGED_IN when the phone has an account, otherwise offers linking.
func (f *LoginFlow) OTPVerified(userFound bool) error {
	if userFound {
		return f.fire(EventOTPVerified)
	}
	return f.fire(EventNoAccountFound)
}

func (f *LoginFlow) ChangeNumber() error {
	err := f.fire(EventChangeNumber)
	if err != nil {
		return err
	}
	f.Phone = ""
	return nil
}

func (f *LoginFlow) LinkExisting() error {
	return f.fire(EventLinkExisting)
}

func (f *LoginFlow) EmailOTPSentTo(email string) error {
	err := f.fire(EventEmailOTPSent)
	if err != nil {
		return err
	}
	f.Email = strings.TrimSpace(email)
	f.EmailOTPSent = true
	return nil
}

// AccountLinked requires an email OTP to have been sent first.
func (f *LoginFlow) AccountLinked() error {
	if !f.EmailOTPSent {
		return loginTransitions.illegal(f.State, EventAccountLinked)
	}
	return f.fire(EventAccountLinked)
}

func (f *LoginFlow) Back() error {
	err := f.fire(EventBack)
	if err != nil {
		return err
	}
	f.Email = ""
	f.EmailOTPSent = false
	return nil
}

func (f *LoginFlow) Reset() {
	*f = *NewLoginFlow()
}
