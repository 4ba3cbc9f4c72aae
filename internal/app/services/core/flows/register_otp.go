package flows

const (
	RegisterEnterDetails State = "ENTER_DETAILS"
	RegisterVerifyOTP    State = "VERIFY_OTP"
	RegisterRegistered   State = "REGISTERED"
)

var registerTransitions = transitions{
	RegisterEnterDetails: {
		EventOTPSent: RegisterVerifyOTP,
	},
	RegisterVerifyOTP: {
		EventOTPSent:       RegisterVerifyOTP,
		EventRegistered:    RegisterRegistered,
		EventChangeDetails: RegisterEnterDetails,
	},
}

// RegisterFlow is the phone OTP signup, persisted under flow_register_otp.
type RegisterFlow struct {
	State State  `json:"state"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func NewRegisterFlow() *RegisterFlow {
	return &RegisterFlow{State: RegisterEnterDetails}
}

func (f *RegisterFlow) fire(event Event) error {
	next, err := registerTransitions.next(f.State, event)
	if err != nil {
		return err
	}
	f.State = next
	return nil
}

func (f *RegisterFlow) OTPSent(name, phone string) error {
	if f.State == RegisterVerifyOTP && (name != f.Name || phone != f.Phone) {
		return registerTransitions.illegal(f.State, EventOTPSent)
	}
	err := f.fire(EventOTPSent)
	if err != nil {
		return err
	}
	f.Name = name
	f.Phone = phone
	return nil
}

func (f *RegisterFlow) Registered() error {
	return f.fire(EventRegistered)
}

func (f *RegisterFlow) ChangeDetails() error {
	return f.fire(EventChangeDetails)
}

func (f *RegisterFlow) Reset() {
	*f = *NewRegisterFlow()
}
