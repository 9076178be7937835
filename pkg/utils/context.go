package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey          contextKey = "user_id"
	RoleKey            contextKey = "role"
	TokenKey           contextKey = "token"
	ManagedFacilityKey contextKey = "managed_facility_id"
)

func SetUserContext(ctx context.Context, userID, role, managedFacilityID string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	if managedFacilityID != "" {
		ctx = context.WithValue(ctx, ManagedFacilityKey, managedFacilityID)
	}
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

func GetManagedFacilityFromContext(ctx context.Context) (string, bool) {
	facilityID, ok := ctx.Value(ManagedFacilityKey).(string)
	if !ok || facilityID == "" {
		return "", false
	}
	return facilityID, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
