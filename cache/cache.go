package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var QuoteCache = cache.New(5*time.Minute, 10*time.Minute)
var NewsCache = cache.New(15*time.Minute, 30*time.Minute)
var AlertCache = cache.New(cache.NoExpiration, 0)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
