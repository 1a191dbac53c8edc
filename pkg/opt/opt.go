package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a request or a client
type Opt func(*Options) error

// Options is the set of applied options
type Options struct {
	url.Values
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Option keys
const (
	SystemPromptKey     = "system_prompt"
	UserPromptKey       = "user_prompt"
	ReasoningSummaryKey = "reasoning_summary"
	ToolKey             = "tool"
	MaxToolCallsKey     = "max_tool_calls"
	TimeoutKey          = "timeout"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (Options, error) {
	opts := Options{Values: make(url.Values)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetString returns the value for key, or empty string if not set. Values
// are returned as set, without trimming, so that prompts keep their layout.
func (o Options) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

// GetStringArray returns all values for key, each trimmed
func (o Options) GetStringArray(key string) []string {
	values, ok := o.Values[key]
	if !ok {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = strings.TrimSpace(v)
	}
	return result
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o Options) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// GetDuration returns the duration value for key, or 0 if not set or invalid
func (o Options) GetDuration(key string) time.Duration {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := time.ParseDuration(strings.TrimSpace(values[0])); err == nil {
			return v
		}
	}
	return 0
}

// Has returns true if the key exists
func (o Options) Has(key string) bool {
	_, ok := o.Values[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Options) error {
		return err
	}
}

// SetString replaces any value for key
func SetString(key, value string) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value)
		return nil
	}
}

// AddString appends values for key, skipping values already present
func AddString(key string, values ...string) Opt {
	return func(o *Options) error {
		for _, v := range values {
			if !contains(o.Values[key], v) {
				o.Values.Add(key, v)
			}
		}
		return nil
	}
}

// SetUint replaces any value for key
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Values.Set(key, fmt.Sprint(value))
		return nil
	}
}

// SetDuration replaces any value for key
func SetDuration(key string, value time.Duration) Opt {
	return func(o *Options) error {
		o.Values.Set(key, value.String())
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
