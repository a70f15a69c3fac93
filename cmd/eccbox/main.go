// Command eccbox encrypts, decrypts, signs, and verifies content
// using secp256k1 keys. Keys are hex strings, cipher objects and
// signatures are JSON on stdin/stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sealbase/eccbox/ecies"
	"github.com/sealbase/eccbox/wctx"
	"github.com/sealbase/eccbox/wecdsa"
	"github.com/sealbase/eccbox/whash"
	"github.com/sealbase/eccbox/wos"
	"github.com/sealbase/eccbox/wsecp256k1"
	"github.com/sealbase/eccbox/wslog"
)

// set by the linker
var Commit = "dev"

const usage = `usage: eccbox <command> [flags]

commands:
  keygen            generate a key pair
  pub               derive the public key for -k
  encrypt           encrypt stdin to -p, cipher object json on stdout
  decrypt           decrypt a cipher object on stdin with -k
  sign              sign stdin with -k, signature json on stdout
  verify            verify stdin against -p and -sig
  fingerprint       short id for hex key material

keys can be passed by value or as $ENV_VAR placeholders
`

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	var (
		op    = os.Args[1]
		fs    = flag.NewFlagSet(op, flag.ExitOnError)
		key   = fs.String("k", "", "private key hex")
		pub   = fs.String("p", "", "public key hex")
		sig   = fs.String("sig", "", "der signature hex")
		raw   = fs.Bool("raw", false, "treat content as raw bytes, not text")
		quiet = fs.Bool("q", false, "log errors only")
	)
	check(fs.Parse(os.Args[2:]))

	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	if *quiet {
		logLevel.Set(slog.LevelError)
	}
	lh := wslog.New(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		if op := wctx.Op(ctx); op != "" {
			return "op", op
		}
		return "", nil
	})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		if id := wctx.ReqID(ctx); id != "" {
			return "req", id
		}
		return "", nil
	})
	slog.SetDefault(slog.New(lh.WithAttrs([]slog.Attr{
		slog.String("v", Commit),
	})))

	ctx := context.Background()
	ctx = wctx.WithVersion(ctx, Commit)
	ctx = wctx.WithOp(ctx, op)
	ctx = wctx.WithReqID(ctx, uuid.NewString()[:8])

	switch op {
	case "keygen":
		prv, err := wsecp256k1.GenerateKey()
		check(err)
		emit(map[string]string{
			"privateKey": wsecp256k1.EncodePrivate(prv),
			"publicKey":  wsecp256k1.EncodePublic(prv.PubKey()),
		})
	case "pub":
		pubHex, err := wsecp256k1.DerivePublic(wos.Getenv(*key))
		check(err)
		fmt.Println(pubHex)
	case "encrypt":
		content, err := io.ReadAll(os.Stdin)
		check(err)
		co, err := ecies.Encrypt(wos.Getenv(*pub), content, !*raw)
		check(err)
		b, err := co.Bytes()
		check(err)
		slog.InfoContext(ctx, "encrypted",
			"to", whash.Fingerprint(wos.Getenv(*pub)),
			"bytes", len(content),
		)
		fmt.Printf("%s\n", b)
	case "decrypt":
		input, err := io.ReadAll(os.Stdin)
		check(err)
		co, err := ecies.ParseCipherObject(input)
		check(err)
		content, wasString, err := ecies.Decrypt(wos.Getenv(*key), co)
		check(err)
		slog.InfoContext(ctx, "decrypted",
			"bytes", len(content),
			"wasString", wasString,
		)
		os.Stdout.Write(content)
	case "sign":
		content, err := io.ReadAll(os.Stdin)
		check(err)
		res, err := wecdsa.Sign(wos.Getenv(*key), content)
		check(err)
		slog.InfoContext(ctx, "signed",
			"by", whash.Fingerprint(res.PublicKey),
			"bytes", len(content),
		)
		emit(res)
	case "verify":
		content, err := io.ReadAll(os.Stdin)
		check(err)
		ok, err := wecdsa.Verify(content, wos.Getenv(*pub), *sig)
		check(err)
		slog.InfoContext(ctx, "verified",
			"under", whash.Fingerprint(wos.Getenv(*pub)),
			"ok", ok,
		)
		if !ok {
			fmt.Println("invalid")
			os.Exit(1)
		}
		fmt.Println("valid")
	case "fingerprint":
		if fs.NArg() != 1 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(1)
		}
		fmt.Println(whash.Fingerprint(fs.Arg(0)))
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func emit(v any) {
	b, err := json.Marshal(v)
	check(err)
	fmt.Printf("%s\n", b)
}
