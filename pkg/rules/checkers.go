package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/datepattern"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func predicate(fn func(string) bool) Checker {
	return func(value string, _ ParamLookup) (Outcome, error) {
		return outcome(fn(value)), nil
	}
}

func outcome(ok bool) Outcome {
	if ok {
		return Pass
	}
	return Fail
}

func checkRequired(value string, _ ParamLookup) (Outcome, error) {
	return outcome(!validator.IsBlank(value)), nil
}

// intParam reads an integer parameter. A missing key reports ok == false with
// a nil error.
func intParam(params ParamLookup, key string) (n int, ok bool, err error) {
	raw, found := params.Param(key)
	if !found {
		return 0, false, nil
	}
	n, err = strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s=%q", ErrInvalidParam, key, raw)
	}
	return n, true, nil
}

// lineEndAdjustment returns the adjustment declared by lineEndLength, or 0
// when the parameter is absent or unusable.
func lineEndAdjustment(value string, params ParamLookup) (int, error) {
	endLength, ok, err := intParam(params, ParamLineEndLength)
	if !ok {
		return 0, err
	}
	return validator.LineEndAdjustment(value, endLength), nil
}

func checkMaxLength(value string, params ParamLookup) (Outcome, error) {
	limit, ok, err := intParam(params, ParamMaxLength)
	if !ok {
		return Skip, err
	}
	adjust, err := lineEndAdjustment(value, params)
	return outcome(validator.IsWithinMaxLength(value, limit, adjust)), err
}

func checkMinLength(value string, params ParamLookup) (Outcome, error) {
	limit, ok, err := intParam(params, ParamMinLength)
	if !ok {
		return Skip, err
	}
	if validator.IsBlank(value) {
		return Skip, nil
	}
	adjust, err := lineEndAdjustment(value, params)
	return outcome(validator.HasMinLength(value, limit, adjust)), err
}

// bounds reads min and max. Both are required by the range rules.
func bounds(params ParamLookup) (lo, hi string, err error) {
	var errs []error
	lo, okLo := params.Param(ParamMin)
	if !okLo {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingParam, ParamMin))
	}
	hi, okHi := params.Param(ParamMax)
	if !okHi {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingParam, ParamMax))
	}
	return lo, hi, errors.Join(errs...)
}

func checkIntRange(value string, params ParamLookup) (Outcome, error) {
	lo, hi, err := bounds(params)
	if err != nil {
		return Fail, err
	}
	return outcome(validator.InIntRange(value, lo, hi)), nil
}

func checkFloatRange(value string, params ParamLookup) (Outcome, error) {
	lo, hi, err := bounds(params)
	if err != nil {
		return Fail, err
	}
	return outcome(validator.InFloatRange(value, lo, hi)), nil
}

func checkMask(value string, params ParamLookup) (Outcome, error) {
	pattern, ok := params.Param(ParamMask)
	if !ok {
		return Skip, nil
	}
	matched, err := validator.MatchesMask(value, pattern)
	if err != nil {
		return Fail, err
	}
	return outcome(matched), nil
}

// checkDate prefers the strict pattern and falls back to the loose one.
func checkDate(value string, params ParamLookup) (Outcome, error) {
	layout, strict := params.Param(ParamDatePatternStrict)
	if !strict {
		layout, _ = params.Param(ParamDatePattern)
	}
	if layout == "" {
		return Skip, nil
	}
	ok, err := validator.IsDate(value, layout, strict)
	if errors.Is(err, datepattern.ErrEmptyPattern) {
		return Skip, nil
	}
	if err != nil {
		return Fail, err
	}
	return outcome(ok), nil
}
