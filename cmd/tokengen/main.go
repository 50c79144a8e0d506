// tokengen 產生 partner 的 x-api-token 設定值：
//
//	tokengen -jwt -partner partner1 -ttl 720h   # 用 JWT_SECRET 簽 JWT
//	tokengen -hash my-token                      # 產生 API_TOKEN_HASH
package main

import (
	"flag"
	"fmt"
	"os"

	"event-partners-api/config"
	"event-partners-api/internal/auth"
)

func main() {
	signJWT := flag.Bool("jwt", false, "sign a JWT with JWT_SECRET")
	partner := flag.String("partner", "", "partner name used as JWT subject (defaults to PARTNER)")
	ttl := flag.Duration("ttl", 0, "JWT lifetime, 0 for no expiry")
	hash := flag.String("hash", "", "plain token to hash with bcrypt")
	flag.Parse()

	cfg := config.LoadConfig()

	switch {
	case *hash != "":
		out, err := auth.HashToken(*hash)
		exitOnErr(err)
		fmt.Println(out)
	case *signJWT:
		name := *partner
		if name == "" {
			name = cfg.App.Partner
		}
		out, err := auth.SignPartnerToken(cfg.Auth.JWTSecret, name, *ttl)
		exitOnErr(err)
		fmt.Println(out)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func exitOnErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
