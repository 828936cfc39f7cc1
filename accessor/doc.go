// Package accessor generates typed get/set accessors for native global variables.
//
// A Synthesizer turns an address, a logical Go type, declared attributes and an
// optional converter pair into an Accessor. Generation resolves everything up front:
// the native kind, the scalar op reading and writing it, the widening or narrowing
// between native storage and the boxed value, and the converters to run. Get and Set
// then only execute the composed steps.
//
// Generation never touches memory. Unsupported types fail with an *UnsupportedTypeError
// at generation time, values of the wrong type fail with a *ClassCastError at call
// time, and backend failures surface as a *ConstructionError.
package accessor
