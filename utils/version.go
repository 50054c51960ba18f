package utils

// REVISION is reported on every API envelope so clients can tell which
// build answered them.
const REVISION = "0.3.1"
