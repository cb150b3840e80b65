// Package common contains constants and sentinel errors shared by the
// todocards server and client.
package common

// AccessTokenHeaderName is the gRPC metadata key carrying the access token.
const AccessTokenHeaderName = "access_token"

// TodoSlots is the fixed number of todo slots every card owns.
const TodoSlots = 10

// MaxLabelsPerCard bounds how many labels a single card may carry.
const MaxLabelsPerCard = 5
