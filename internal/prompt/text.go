package prompt

import "golang.org/x/text/language"

type text struct {
	choose          string
	login           string
	register        string
	name            string
	email           string
	password        string
	confirm         string
	invalid         string
	loginSuccess    string
	registerSuccess string
}

var spanishText = text{
	choose:          "¿Qué quieres hacer?",
	login:           "Iniciar Sesión",
	register:        "Registrarse",
	name:            "Nombre",
	email:           "Email",
	password:        "Contraseña",
	confirm:         "Confirmar contraseña",
	invalid:         "Revisa los siguientes campos:",
	loginSuccess:    "¡Hola, bro! Sesión iniciada como %s",
	registerSuccess: "✅ Registro exitoso, %s",
}

var englishText = text{
	choose:          "What would you like to do?",
	login:           "Log in",
	register:        "Register",
	name:            "Name",
	email:           "Email",
	password:        "Password",
	confirm:         "Confirm password",
	invalid:         "Please check the following fields:",
	loginSuccess:    "Hey there! Logged in as %s",
	registerSuccess: "✅ Registration successful, %s",
}

func textFor(tag language.Tag) text {
	if base, _ := tag.Base(); base.String() == "en" {
		return englishText
	}
	return spanishText
}
