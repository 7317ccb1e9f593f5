// Command pastecli is a small client for the paste server. Login saves the
// session cookie to cookie_<user>.txt in the working directory; paste reads
// it back and submits stdin.
package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	server := os.Getenv("PASTEBIN_URL")
	if server == "" {
		server = "http://localhost:3000"
	}

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return
	}

	switch args[0] {
	case "register":
		if len(args) < 3 {
			fail("register needs <user> <pass>")
		}
		register(server, args[1], args[2])
	case "login":
		if len(args) < 3 {
			fail("login needs <user> <pass>")
		}
		login(server, args[1], args[2])
	case "paste":
		if len(args) < 2 {
			fail("paste needs <user>")
		}
		paste(server, args[1])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Commands:")
	fmt.Println("  register <user> <pass>")
	fmt.Println("  login <user> <pass>")
	fmt.Println("  paste <user>   (text on stdin)")
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func register(server, username, password string) {
	resp, err := http.PostForm(server+"/register", url.Values{
		"username": {username},
		"password": {password},
	})
	if err != nil {
		fail("register request: " + err.Error())
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Println(string(body))
}

func login(server, username, password string) {
	resp, err := http.PostForm(server+"/login", url.Values{
		"username": {username},
		"password": {password},
	})
	if err != nil {
		fail("login request: " + err.Error())
	}
	defer resp.Body.Close()

	setCookie := resp.Header.Get("Set-Cookie")
	if setCookie == "" {
		fail("server sent no Set-Cookie")
	}

	filename := cookieFile(username)
	if err := os.WriteFile(filename, []byte(setCookie), 0o600); err != nil {
		fail("saving cookie: " + err.Error())
	}
	fmt.Printf("Cookie saved to %s\n", filename)
}

func paste(server, username string) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		fail("reading stdin: " + err.Error())
	}
	if strings.TrimSpace(string(content)) == "" {
		fail("no text on stdin")
	}

	cookie, err := os.ReadFile(cookieFile(username))
	if err != nil {
		fail("reading cookie: " + err.Error())
	}

	form := url.Values{"text": {string(content)}}
	req, err := http.NewRequest(http.MethodPost, server+"/paste", strings.NewReader(form.Encode()))
	if err != nil {
		fail(err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", strings.TrimSpace(string(cookie)))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fail("sending paste: " + err.Error())
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Println(string(body))
}

func cookieFile(username string) string {
	return fmt.Sprintf("cookie_%s.txt", username)
}
