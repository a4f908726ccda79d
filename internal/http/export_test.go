package http

// Export for testing
var RegisterStatic = registerStatic
var HTTPErrorHandler = httpErrorHandler
