// genhash はADMIN_PASSWORD_HASH用のbcryptハッシュを生成する運用ツール。
//
// 使い方: genhash <平文パスワード>
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// コストを上げるほどハッシュ計算が重くなる
const bcryptCost = 12

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: genhash <contraseña>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcryptCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genhash: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(hash))
}
