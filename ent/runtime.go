// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studiq/ent/explainevent"
	"github.com/abhisek/studiq/ent/profile"
	"github.com/abhisek/studiq/ent/schema"
	"github.com/abhisek/studiq/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	explaineventMixin := schema.ExplainEvent{}.Mixin()
	explaineventMixinFields0 := explaineventMixin[0].Fields()
	_ = explaineventMixinFields0
	explaineventFields := schema.ExplainEvent{}.Fields()
	_ = explaineventFields
	// explaineventDescTimestamp is the schema descriptor for timestamp field.
	explaineventDescTimestamp := explaineventMixinFields0[1].Descriptor()
	// explainevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	explainevent.DefaultTimestamp = explaineventDescTimestamp.Default.(func() time.Time)
	// explaineventDescProvider is the schema descriptor for provider field.
	explaineventDescProvider := explaineventFields[0].Descriptor()
	// explainevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	explainevent.ProviderValidator = explaineventDescProvider.Validators[0].(func(string) error)
	// explaineventDescPurpose is the schema descriptor for purpose field.
	explaineventDescPurpose := explaineventFields[2].Descriptor()
	// explainevent.DefaultPurpose holds the default value on creation for the purpose field.
	explainevent.DefaultPurpose = explaineventDescPurpose.Default.(string)
	// explaineventDescInputTokens is the schema descriptor for input_tokens field.
	explaineventDescInputTokens := explaineventFields[3].Descriptor()
	// explainevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	explainevent.DefaultInputTokens = explaineventDescInputTokens.Default.(int)
	// explaineventDescOutputTokens is the schema descriptor for output_tokens field.
	explaineventDescOutputTokens := explaineventFields[4].Descriptor()
	// explainevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	explainevent.DefaultOutputTokens = explaineventDescOutputTokens.Default.(int)
	// explaineventDescLatencyMs is the schema descriptor for latency_ms field.
	explaineventDescLatencyMs := explaineventFields[5].Descriptor()
	// explainevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	explainevent.DefaultLatencyMs = explaineventDescLatencyMs.Default.(int64)
	// explaineventDescSuccess is the schema descriptor for success field.
	explaineventDescSuccess := explaineventFields[6].Descriptor()
	// explainevent.DefaultSuccess holds the default value on creation for the success field.
	explainevent.DefaultSuccess = explaineventDescSuccess.Default.(bool)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescSubject is the schema descriptor for subject field.
	sessioneventDescSubject := sessioneventFields[2].Descriptor()
	// sessionevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	sessionevent.SubjectValidator = sessioneventDescSubject.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescTotalQuestions is the schema descriptor for total_questions field.
	sessioneventDescTotalQuestions := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	sessionevent.DefaultTotalQuestions = sessioneventDescTotalQuestions.Default.(int)
}
