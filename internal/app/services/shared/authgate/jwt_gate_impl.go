package authgate

import (
	"careplan-service/internal/app/config"
	"careplan-service/internal/app/contracts"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/exceptions"
	"careplan-service/internal/pkg/utils"
	"context"
	"sync"
)

type jwtAuthorizationGate struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

var (
	jwtGateInstance *jwtAuthorizationGate
	onceJwtGate     sync.Once
)

func NewJWTAuthorizationGate(
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthorizationGate {
	onceJwtGate.Do(func() {
		jwtGateInstance = &jwtAuthorizationGate{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
		}
	})
	return jwtGateInstance
}

// Authorize proves the asserted principal from the bearer token carried
// in the request context. The token must parse, must not sit in the
// revocation set, and its subject must match the principal the request
// body claims to act as.
func (g *jwtAuthorizationGate) Authorize(ctx context.Context, principal string) error {
	tokenString, ok := ctx.Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string)
	if !ok || tokenString == "" {
		return exceptions.ErrTokenMissing(nil)
	}

	provenPrincipal, tokenID, err := utils.ParsePrincipalJWT(tokenString, g.InternalConfig.JWT.Secret)
	if err != nil {
		return err
	}

	if tokenID != "" {
		revoked, err := g.RedisRepository.IsSetMember(ctx, constvars.RedisRevokedTokenSetKey, tokenID)
		if err != nil {
			return err
		}
		if revoked {
			return exceptions.ErrTokenRevoked(nil)
		}
	}

	if provenPrincipal != principal {
		return exceptions.ErrNotAuthorized(principal)
	}
	return nil
}
