package utils

import (
	"anubha-web/internal/pkg/dto/requests"
	"strings"
)

func SanitizePasswordLoginRequest(input *requests.PasswordLogin) {
	input.Identifier = strings.TrimSpace(input.Identifier)
	if strings.Contains(input.Identifier, "@") {
		input.Identifier = strings.ToLower(input.Identifier)
	}
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeSendPhoneOTPRequest(input *requests.SendPhoneOTP) {
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeSendRegisterOTPRequest(input *requests.SendRegisterOTP) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeVerifyOTPRequest(input *requests.VerifyOTP) {
	input.OTP = strings.TrimSpace(input.OTP)
}

func SanitizeEmailOTPRequest(input *requests.SendEmailOTP) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeVerifyEmailOTPRequest(input *requests.VerifyEmailOTP) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.OTP = strings.TrimSpace(input.OTP)
}

func SanitizeCreateRecallRequest(input *requests.CreateRecall) {
	input.Notes = strings.TrimSpace(input.Notes)
	for i := range input.Entries {
		input.Entries[i].MealType = strings.TrimSpace(input.Entries[i].MealType)
		input.Entries[i].FoodItem = strings.TrimSpace(input.Entries[i].FoodItem)
		input.Entries[i].Quantity = strings.TrimSpace(input.Entries[i].Quantity)
		input.Entries[i].Notes = strings.TrimSpace(input.Entries[i].Notes)
	}
}

func SanitizeTestimonialForm(input *requests.TestimonialForm) {
	input.Name = strings.TrimSpace(input.Name)
	input.Text = strings.TrimSpace(input.Text)
}

func SanitizeAdminDeleteRequest(input *requests.AdminDeleteAppointment) {
	input.Reason = strings.TrimSpace(input.Reason)
	input.Scope = strings.ToLower(strings.TrimSpace(input.Scope))
}
