package catalog

import "github.com/sigscan/sigscan/internal/types"

// defaultRules is the fixed, ordered signature set. Order establishes
// grouping and tie-break precedence in reports; it does not affect match
// correctness, because every matching rule fires.
var defaultRules = []Rule{
	// Hardcoded secrets
	rule("hardcoded-password", KindSecret, types.SevCritical, "Hardcoded Secret",
		"Hardcoded password; move it to environment or a secret manager",
		`(password|passwd|pwd)\s*[:=]\s*["'][^"']+["']`),
	rule("hardcoded-api-key", KindSecret, types.SevCritical, "Hardcoded Secret",
		"Hardcoded API key; move it to environment or a secret manager",
		`(api[_-]?key|apikey)\s*[:=]\s*["'][^"']+["']`),
	rule("hardcoded-secret", KindSecret, types.SevCritical, "Hardcoded Secret",
		"Hardcoded secret value; move it to environment or a secret manager",
		`(secret|client[_-]?secret)\s*[:=]\s*["'][^"']{8,}["']`),
	rule("hardcoded-token", KindSecret, types.SevCritical, "Hardcoded Secret",
		"Hardcoded access token; move it to environment or a secret manager",
		`(auth[_-]?token|access[_-]?token|bearer[_-]?token)\s*[:=]\s*["'][^"']+["']`),
	rule("private-key-block", KindSecret, types.SevCritical, "Hardcoded Secret",
		"Private key material committed to source",
		`-----BEGIN\s+(RSA|DSA|EC|OPENSSH|PGP)?\s*PRIVATE\s+KEY`),
	rule("aws-access-key", KindSecret, types.SevCritical, "Hardcoded Secret",
		"AWS access key ID committed to source",
		`\bAKIA[0-9A-Z]{16}\b`),
	rule("connection-string-creds", KindSecret, types.SevCritical, "Hardcoded Secret",
		"Connection string embeds credentials",
		`(mongodb|postgres|postgresql|mysql|redis|amqp)://[^\s/]+:[^\s@]+@`),

	// SQL injection
	rule("sql-concat", KindInjection, types.SevHigh, "SQL Injection",
		"SQL statement built by string concatenation; use parameterized queries",
		`["'].*\b(select\s+.+\s+from|insert\s+into|update\s+\w+\s+set|delete\s+from|drop\s+table)\b.*["']\s*(\+|\|\|)`),
	rule("sql-interpolation", KindInjection, types.SevHigh, "SQL Injection",
		"SQL statement built by string interpolation; use parameterized queries",
		`\b(select\s+.+\s+from|insert\s+into|update\s+\w+\s+set|delete\s+from)\b.*(\$\{|%s|%d|\{\d*\})`),
	rule("query-concat", KindInjection, types.SevHigh, "SQL Injection",
		"Query call concatenates untrusted input; use parameterized queries",
		`\b(query|execute|exec)\s*\(\s*["'][^"']*["']\s*\+`),

	// Command injection
	rule("command-exec-concat", KindInjection, types.SevCritical, "Command Injection",
		"Shell command built from dynamic input; use an argument vector instead",
		`\b(exec|execSync|system|popen|spawnSync?)\s*\([^)]*(\+|\$\{)`),
	rule("child-process-shell", KindInjection, types.SevHigh, "Command Injection",
		"child_process with a shell string; prefer execFile with fixed arguments",
		`child_process|execSync\s*\(`),
	rule("subprocess-shell-true", KindInjection, types.SevHigh, "Command Injection",
		"subprocess invoked with shell=True; pass an argument list instead",
		`shell\s*=\s*true`),
	rule("os-system", KindInjection, types.SevHigh, "Command Injection",
		"os.system executes a shell string; use subprocess with an argument list",
		`\bos\.system\s*\(`),

	// Code eval
	rule("eval-call", KindInjection, types.SevHigh, "Code Injection",
		"eval() on dynamic input executes arbitrary code",
		`\beval\s*\(`),
	rule("new-function", KindInjection, types.SevHigh, "Code Injection",
		"new Function() compiles strings into code",
		`new\s+Function\s*\(`),
	rule("settimeout-string", KindInjection, types.SevMedium, "Code Injection",
		"setTimeout/setInterval with a string argument is implicit eval",
		`\bset(Timeout|Interval)\s*\(\s*["']`),

	// Cross-site scripting
	rule("inner-html", KindXSS, types.SevHigh, "Cross-Site Scripting",
		"innerHTML assignment renders unescaped markup; use textContent or sanitize",
		`\.innerHTML\s*=`),
	rule("outer-html", KindXSS, types.SevHigh, "Cross-Site Scripting",
		"outerHTML assignment renders unescaped markup; sanitize first",
		`\.outerHTML\s*=`),
	rule("document-write", KindXSS, types.SevMedium, "Cross-Site Scripting",
		"document.write injects markup directly into the page",
		`document\.write(ln)?\s*\(`),
	rule("dangerously-set-html", KindXSS, types.SevHigh, "Cross-Site Scripting",
		"dangerouslySetInnerHTML bypasses React escaping; sanitize the payload",
		`dangerouslySetInnerHTML`),
	rule("vue-v-html", KindXSS, types.SevMedium, "Cross-Site Scripting",
		"v-html renders raw markup; sanitize the bound value",
		`v-html\s*=`),
	rule("insert-adjacent-html", KindXSS, types.SevMedium, "Cross-Site Scripting",
		"insertAdjacentHTML injects unescaped markup",
		`insertAdjacentHTML\s*\(`),

	// Weak cryptography
	rule("weak-hash-md5", KindCrypto, types.SevMedium, "Weak Cryptography",
		"MD5 is broken for security use; switch to SHA-256 or better",
		`\bmd5\s*\(|createHash\s*\(\s*["']md5["']|hashlib\.md5\b|MessageDigest\.getInstance\s*\(\s*["']MD5`),
	rule("weak-hash-sha1", KindCrypto, types.SevMedium, "Weak Cryptography",
		"SHA-1 is deprecated for security use; switch to SHA-256 or better",
		`\bsha1\s*\(|createHash\s*\(\s*["']sha1["']|hashlib\.sha1\b|MessageDigest\.getInstance\s*\(\s*["']SHA-?1`),
	rule("des-cipher", KindCrypto, types.SevMedium, "Weak Cryptography",
		"DES/3DES ciphers are obsolete; use AES-GCM",
		`createCipheriv\s*\(\s*["'](des|des3|des-ede)`),
	rule("ecb-mode", KindCrypto, types.SevMedium, "Weak Cryptography",
		"ECB mode leaks plaintext structure; use an authenticated mode",
		`(aes|des)[-_]?\w*[-_]ecb`),
	rule("math-random-token", KindCrypto, types.SevLow, "Weak Randomness",
		"Math.random is not cryptographically secure; use crypto.randomBytes",
		`math\.random\s*\(`),
	rule("python-random-token", KindCrypto, types.SevLow, "Weak Randomness",
		"random module is not cryptographically secure; use the secrets module",
		`\brandom\.(random|randint|choice)\s*\(`),

	// Authentication bypass
	rule("tls-verify-disabled", KindAuthBypass, types.SevHigh, "Authentication Bypass",
		"TLS certificate verification disabled",
		`verify\s*=\s*false|rejectUnauthorized\s*:\s*false|InsecureSkipVerify\s*:\s*true`),
	rule("tls-env-disabled", KindAuthBypass, types.SevHigh, "Authentication Bypass",
		"NODE_TLS_REJECT_UNAUTHORIZED=0 disables TLS verification process-wide",
		`NODE_TLS_REJECT_UNAUTHORIZED\s*(=|:)\s*["']?0`),
	rule("auth-disabled", KindAuthBypass, types.SevHigh, "Authentication Bypass",
		"Authentication check disabled or stubbed out",
		`(auth|authentication|authorize)[a-z_]*\s*(=|:)\s*(false|none|["']disabled["'])`),
	rule("basic-auth-header", KindAuthBypass, types.SevMedium, "Authentication Bypass",
		"Hardcoded Basic authorization header",
		`authorization["'\s:=]+basic\s+[a-z0-9+/=]+`),

	// Information disclosure
	rule("console-log-secret", KindInfoLeak, types.SevMedium, "Information Disclosure",
		"Sensitive value written to console output",
		`console\.(log|debug|info)\s*\([^)]*(password|secret|token|api[_-]?key)`),
	rule("print-secret", KindInfoLeak, types.SevMedium, "Information Disclosure",
		"Sensitive value written to stdout",
		`\bprint(ln|f)?\s*\([^)]*(password|secret|token|api[_-]?key)`),
	rule("stack-trace-exposed", KindInfoLeak, types.SevLow, "Information Disclosure",
		"Stack trace surfaced to the caller; log it instead",
		`printStackTrace\s*\(|res(ponse)?\.(send|json|write)\s*\([^)]*\berr(or)?\b[^)]*\.stack`),
	rule("debug-enabled", KindInfoLeak, types.SevLow, "Information Disclosure",
		"Debug mode enabled; disable it in production builds",
		`\bdebug\s*(=|:)\s*true\b`),
	rule("x-powered-by", KindInfoLeak, types.SevLow, "Information Disclosure",
		"X-Powered-By header reveals the server stack",
		`x-powered-by`),
}
