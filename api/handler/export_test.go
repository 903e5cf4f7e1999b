package handler

// StateCookieName exposes stateCookieName to the external test package.
const StateCookieName = stateCookieName
