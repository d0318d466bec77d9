package assertvalid

var PackagePath = packagePath
