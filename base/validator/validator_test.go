package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0x8d59e8ef33fb819979ad09fb444a26792970fbzz",
			expIsValid: false,
		},
		{
			desc:       "valid address - checksum",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x8d59e8ef33fb819979ad09fb444a26792970fb6f",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidTokenAmount() {
	tests := []struct {
		amount     string
		expIsValid bool
	}{
		{"8", true},
		{"0.5", true},
		{"1.234567", true},
		{" 3 ", true},
		{"0", false},
		{"-1", false},
		{"1.2345678", false},
		{"eight", false},
		{"", false},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidTokenAmount(t.amount), t.amount)
	}
}

func (s *ValidatorTestSuite) TestCustomTags() {
	type payload struct {
		Contract string `validate:"required,eth_address"`
		Amount   string `validate:"omitempty,token_amount"`
	}
	v := NewCustomValidator(New())

	s.NoError(v.Validate(&payload{Contract: "0x8d59e8ef33fb819979ad09fb444a26792970fb6f"}))
	s.NoError(v.Validate(&payload{Contract: "0x8d59e8ef33fb819979ad09fb444a26792970fb6f", Amount: "8"}))
	s.Error(v.Validate(&payload{Contract: "0x1"}))
	s.Error(v.Validate(&payload{Contract: "0x8d59e8ef33fb819979ad09fb444a26792970fb6f", Amount: "0"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
