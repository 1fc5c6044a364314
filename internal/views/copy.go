package views

import "golang.org/x/text/language"

// Copy is the fixed screen text of one language.
type Copy struct {
	HomeTitle       string
	HomeSubtitle    string
	LoginAction     string
	RegisterAction  string
	LoginTitle      string
	LoginSubtitle   string
	RegisterTitle   string
	Requirements    string
	RequirementList []string
	BackToHome      string
	ToRegister      string
	ToLogin         string
	RegisterSuccess string
	SessionGreeting string
	SessionWelcome  string
	SessionQuestion string
	SessionHint     string
	SessionQuote    string
	SessionExpires  string
	SessionExpired  string
	Logout          string
	ExtendHint      string
	Loading         string
	Quit            string
	Next            string
	Previous        string
	Submit          string
	Select          string
	Back            string

	EmailLabel    string
	PasswordLabel string
	NameLabel     string
	ConfirmLabel  string
	NamePrompt    string
	EmailPrompt   string
	GmailPrompt   string
}

var spanishCopy = Copy{
	HomeTitle:      "🌸 ¡Bienvenido!",
	HomeSubtitle:   "Inicia sesión o crea una cuenta para continuar.",
	LoginAction:    "Iniciar Sesión ⚡",
	RegisterAction: "Registrarse 💫",
	LoginTitle:     "ログイン",
	LoginSubtitle:  "WELCOME BACK",
	RegisterTitle:  "Crear cuenta",
	Requirements:   "🔹 Requisitos:",
	RequirementList: []string{
		"El nombre debe tener al menos 3 caracteres.",
		"Usa un correo electrónico válido.",
		"La contraseña debe tener al menos 6 caracteres.",
		"Ambas contraseñas deben coincidir.",
	},
	BackToHome:      "← volver",
	ToRegister:      "¿No tienes cuenta? ¡Regístrate!",
	ToLogin:         "¿Ya tienes cuenta? Inicia sesión",
	RegisterSuccess: "✅ Registro exitoso",
	SessionGreeting: "¡Hola, bro! 👋",
	SessionWelcome:  "¡Bienvenido de nuevo al mundo anime! 💫",
	SessionQuestion: "🌸 ¿Qué anime verás hoy?",
	SessionHint:     "Tal vez algo de acción, romance o un clásico shōnen. ¡Tú decides, héroe del día! ⚔️✨",
	SessionQuote:    "“El poder del anime está en tu corazón 💙”",
	SessionExpires:  "La sesión expira en",
	SessionExpired:  "Tu sesión ha expirado.",
	Logout:          "Cerrar Sesión",
	ExtendHint:      "e: extender sesión · enter: cerrar sesión",
	Loading:         "Cargando...",
	Quit:            "salir",
	Next:            "siguiente",
	Previous:        "anterior",
	Submit:          "enviar",
	Select:          "elegir",
	Back:            "volver",
	EmailLabel:      "📧 EMAIL",
	PasswordLabel:   "🔐 PASSWORD",
	NameLabel:       "Nombre",
	ConfirmLabel:    "Confirmar contraseña",
	NamePrompt:      "Tu nombre",
	EmailPrompt:     "usuario@dominio.com",
	GmailPrompt:     "ejemplo@gmail.com",
}

var englishCopy = Copy{
	HomeTitle:      "🌸 Welcome!",
	HomeSubtitle:   "Sign in or create an account to continue.",
	LoginAction:    "Sign In ⚡",
	RegisterAction: "Sign Up 💫",
	LoginTitle:     "ログイン",
	LoginSubtitle:  "WELCOME BACK",
	RegisterTitle:  "Create account",
	Requirements:   "🔹 Requirements:",
	RequirementList: []string{
		"Name must be at least 3 characters.",
		"Use a valid email address.",
		"Password must be at least 6 characters.",
		"Both passwords must match.",
	},
	BackToHome:      "← back",
	ToRegister:      "No account yet? Sign up!",
	ToLogin:         "Already have an account? Sign in",
	RegisterSuccess: "✅ Registration successful",
	SessionGreeting: "Hey there! 👋",
	SessionWelcome:  "Welcome back to the anime world! 💫",
	SessionQuestion: "🌸 What will you watch today?",
	SessionHint:     "Maybe some action, romance or a classic shōnen. You decide, hero of the day! ⚔️✨",
	SessionQuote:    "“The power of anime is in your heart 💙”",
	SessionExpires:  "Session expires in",
	SessionExpired:  "Your session has expired.",
	Logout:          "Sign Out",
	ExtendHint:      "e: extend session · enter: sign out",
	Loading:         "Loading...",
	Quit:            "quit",
	Next:            "next",
	Previous:        "previous",
	Submit:          "submit",
	Select:          "select",
	Back:            "back",
	EmailLabel:      "📧 EMAIL",
	PasswordLabel:   "🔐 PASSWORD",
	NameLabel:       "Name",
	ConfirmLabel:    "Confirm password",
	NamePrompt:      "Your name",
	EmailPrompt:     "user@domain.com",
	GmailPrompt:     "example@gmail.com",
}

// CopyFor returns the screen text for tag, defaulting to Spanish.
func CopyFor(tag language.Tag) Copy {
	base, _ := tag.Base()
	if english, _ := language.English.Base(); base == english {
		return englishCopy
	}
	return spanishCopy
}
