// Package naming provides the name conversion policies used to turn struct
// field names and enumerated symbols into class names or style properties.
//
// Key functions:
//   - None: keeps the identifier untouched
//   - UnderscoreToHyphen: replaces every underscore with a hyphen
//   - KebabCase: hyphen before every upper-case letter but the first, lower-cased
//   - KebabCaseWithUnderscoreToHyphen: KebabCase plus underscore replacement
//   - Lookup: resolves a policy by its configuration name
package naming
