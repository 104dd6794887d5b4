package httpx

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — v в границах [lo, hi].
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ParseLimitOffset — окно выборки из query (limit/offset).
// limit зажимается в [1, maxLimit], нечисловой limit даёт defaultLimit;
// нечисловой или отрицательный offset даёт 0.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = ClampInt(defaultLimit, 1, maxLimit)
	if v, ok := queryInt(c, "limit"); ok {
		limit = ClampInt(v, 1, maxLimit)
	}
	if v, ok := queryInt(c, "offset"); ok && v >= 0 {
		offset = v
	}
	return limit, offset
}

// QueryBool — булев флаг из query; отсутствующий параметр даёт def.
// Принимает значения strconv.ParseBool (1/0, t/f, true/false).
func QueryBool(c *gin.Context, key string, def bool) (bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, fmt.Errorf("invalid %s flag: %s", key, raw)
	}
	return v, nil
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
