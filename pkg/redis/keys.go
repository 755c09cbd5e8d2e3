package redis

import "fmt"

// MenuCacheKey holds the serialized menu listing.
func MenuCacheKey() string {
	return "skyhi_pos:menu:list"
}

// RateLimitUserKey scopes the sliding-window rate limit to one account.
func RateLimitUserKey(userID uint) string {
	return fmt.Sprintf("skyhi_pos:rate_limit:user:%d", userID)
}

// RateLimitIPKey is the unauthenticated fallback scope.
func RateLimitIPKey(ip string) string {
	return fmt.Sprintf("skyhi_pos:rate_limit:ip:%s", ip)
}
