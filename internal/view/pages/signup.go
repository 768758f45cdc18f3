package pages

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/coli-team/coli-web/internal/signup"
)

// Sign-up routes the form talks to.
const (
	SignUpPath      = "/sign-up"
	SignUpLabelPath = "/sign-up/label/"
)

const formID = "signup-form"

var defaultLabels = map[signup.Field]string{
	signup.FieldName:            "Full name",
	signup.FieldEmail:           "Email",
	signup.FieldProfile:         "User Profile",
	signup.FieldPassword:        "Password",
	signup.FieldConfirmPassword: "Confirm Password",
}

// SignUp renders the full sign-up page body.
func SignUp(s signup.State) g.Node {
	return h.Div(
		h.Class("h-screen grid place-items-center"),
		h.Section(
			h.Class("min-w-[16rem] max-w-[30rem]"),
			h.H1(
				h.Class("font-bold text-3xl mb-4 text-center text-slate-700 leading-normal"),
				g.Text("Supercharge Your "),
				h.Span(h.Class("text-red-400"), g.Text("Productivity")),
				g.Text(" with COLI - Sign Up Now!"),
			),
			SignUpForm(s),
		),
	)
}

// SignUpForm renders the form for s. It is also the htmx swap target, so a
// re-render after a failed submit replaces it in place.
func SignUpForm(s signup.State) g.Node {
	return h.Form(
		h.ID(formID),
		h.Class("flex flex-col gap-3 px-3"),
		h.Method("post"),
		h.Action(SignUpPath),
		g.Attr("enctype", "multipart/form-data"),
		hx.Post(SignUpPath),
		g.Attr("hx-encoding", "multipart/form-data"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		g.Attr("data-phase", s.Phase.String()),
		textField(signup.FieldName, "text", s.Name, s.Error),
		textField(signup.FieldEmail, "email", s.Email, s.Error),
		// Passwords are never echoed back into the page.
		textField(signup.FieldPassword, "password", "", s.Error),
		textField(signup.FieldConfirmPassword, "password", "", s.Error),
		profileField(s.Error),
		h.Div(
			h.Class("mt-4"),
			submitButton(s.Busy()),
		),
	)
}

// FieldLabel renders the label of f: the active error message in red when
// verr is attached to f, its default text otherwise.
func FieldLabel(f signup.Field, verr signup.ValidationError) g.Node {
	text := defaultLabels[f]
	class := "text-sm font-semibold text-slate-600 border-b"
	if verr.For(f) {
		text = verr.Message
		class = "text-sm font-semibold text-red-500 border-b border-b-red-400"
	}
	return h.Label(
		h.ID(labelID(f)),
		h.For(f.String()),
		h.Class(class),
		g.Text(text),
	)
}

func textField(f signup.Field, inputType, value string, verr signup.ValidationError) g.Node {
	return h.Div(
		h.Class("flex flex-col gap-1"),
		FieldLabel(f, verr),
		h.Input(
			h.ID(f.String()),
			h.Name(f.String()),
			h.Type(inputType),
			g.If(value != "", h.Value(value)),
			h.Class("py-1 outline-none border-b-2 border-b-slate-300"),
			clearOnEdit(f, verr, "input"),
		),
	)
}

// profileField has no value attribute; a previously chosen file is not kept
// across a re-render.
func profileField(verr signup.ValidationError) g.Node {
	f := signup.FieldProfile
	return h.Div(
		h.Class("flex flex-col gap-1"),
		FieldLabel(f, verr),
		h.Input(
			h.ID(f.String()),
			h.Name(f.String()),
			h.Type("file"),
			h.Accept("image/*"),
			clearOnEdit(f, verr, "change"),
		),
	)
}

// clearOnEdit swaps the error label back to its default on the first edit
// of the field that carries the active error.
func clearOnEdit(f signup.Field, verr signup.ValidationError, event string) g.Node {
	if !verr.For(f) {
		return nil
	}
	return g.Group{
		hx.Get(SignUpLabelPath + f.String()),
		hx.Trigger(event + " once"),
		hx.Target("#" + labelID(f)),
		hx.Swap("outerHTML"),
	}
}

func submitButton(busy bool) g.Node {
	class := "block w-full py-2 rounded-sm font-semibold tracking-wide transition-all duration-200 bg-slate-700 text-white hover:bg-slate-700/95"
	if busy {
		class = "block w-full py-2 rounded-sm font-semibold tracking-wide transition-all duration-200 bg-gray-100 text-slate-700"
	}
	return h.Button(
		h.Type("submit"),
		h.Class(class),
		g.If(busy, h.Disabled()),
		h.Span(h.Class("label-idle"), g.If(busy, h.Style("display:none")), g.Text("Sign Up")),
		h.Span(h.Class("label-busy"), g.If(!busy, h.Style("display:none")), g.Text("Waiting...")),
	)
}

func labelID(f signup.Field) string {
	return "label-" + f.String()
}
