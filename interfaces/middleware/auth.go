package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"axlas-recipes/domain/dto"
	"axlas-recipes/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Auth guards the admin group. Tokens are HS256, signed with the app secret.
func Auth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Res{
			ResponseCode:    "401",
			ResponseMessage: "Unauthorized",
		}

		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" || secretKey == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		auth := strings.Split(authorization, "Bearer ")
		if len(auth) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims, token, err := getClaim(auth[1], secretKey)
		if err != nil || !token.Valid {
			res.ResponseMessage = describe(err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set("user_name", claims.UserName)
		ctx.Next()
	}
}

func describe(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token:%v", err)
	}
	return "Unauthorized"
}

func getClaim(tokenString string, secretKey string) (model.AdminClaims, *jwt.Token, error) {
	var claims model.AdminClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return claims, token, err
}
